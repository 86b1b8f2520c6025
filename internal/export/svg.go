// Package export writes backdrop frames as SVG documents.
package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
)

// SVG is a surface that keeps the shapes of the current frame. A wash of at
// least half opacity starts a new frame, so after rendering a sequence the
// document holds the last frame only.
type SVG struct {
	W, H       float64
	Background colorful.Color
	body       []string
	glows      map[float64]bool
}

var _ surface.Surface = (*SVG)(nil)

func NewSVG(w, h float64) *SVG {
	return &SVG{W: w, H: h, Background: surface.Black, glows: make(map[float64]bool)}
}

func (s *SVG) Size() (w, h float64) { return s.W, s.H }

// Len is the number of shapes in the frame.
func (s *SVG) Len() int { return len(s.body) }

func (s *SVG) add(format string, args ...any) {
	s.body = append(s.body, fmt.Sprintf(format, args...))
}

func (s *SVG) filter(glow float64) string {
	if glow <= 0 {
		return ""
	}
	s.glows[glow] = true
	return fmt.Sprintf(` filter="url(#%s)"`, glowID(glow))
}

func glowID(glow float64) string {
	return fmt.Sprintf("glow%g", glow)
}

func (s *SVG) Fade(c colorful.Color, alpha float64) {
	if alpha >= 0.5 {
		s.body = s.body[:0]
		s.Background = c
		return
	}
	s.add(`<rect width="100%%" height="100%%" fill="%s" fill-opacity="%.2f"/>`, c.Hex(), alpha)
}

func (s *SVG) FillCircle(x, y, r float64, c colorful.Color, glow float64) {
	s.add(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"%s/>`, x, y, r, c.Hex(), s.filter(glow))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64) {
	s.add(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.3f"/>`,
		x0, y0, x1, y1, c.Hex(), width, alpha)
}

func (s *SVG) FillRect(x, y, w, h float64, c colorful.Color, glow float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	s.add(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"%s/>`, x, y, w, h, c.Hex(), s.filter(glow))
}

// FillSector draws a wedge swept clockwise from start to end.
func (s *SVG) FillSector(cx, cy, r, start, end float64, c colorful.Color, glow float64) {
	sweep := end - start
	if sweep <= 0 || r <= 0 {
		return
	}
	if sweep >= 2*math.Pi {
		s.FillCircle(cx, cy, r, c, glow)
		return
	}
	x0, y0 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	x1, y1 := cx+r*math.Cos(end), cy+r*math.Sin(end)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	s.add(`<path d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z" fill="%s"%s/>`,
		cx, cy, x0, y0, r, r, large, x1, y1, c.Hex(), s.filter(glow))
}

// ClearCircle paints the circle in the background color.
func (s *SVG) ClearCircle(cx, cy, r float64) {
	s.add(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`, cx, cy, r, s.Background.Hex())
}

// String renders the document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.W, s.H, s.W, s.H)

	if len(s.glows) > 0 {
		glows := make([]float64, 0, len(s.glows))
		for g := range s.glows {
			glows = append(glows, g)
		}
		sort.Float64s(glows)
		sb.WriteString("<defs>\n")
		for _, g := range glows {
			fmt.Fprintf(&sb, `<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">
<feGaussianBlur in="SourceGraphic" stdDeviation="%g" result="blur"/>
<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
</filter>
`, glowID(g), g/2)
		}
		sb.WriteString("</defs>\n")
	}

	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>
`, s.Background.Hex())
	for _, el := range s.body {
		sb.WriteString(el)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
