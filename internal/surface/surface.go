package surface

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a 2D drawing target addressed in page pixels.
// Angles are in radians, measured clockwise from the positive x axis
// because y grows downward.
type Surface interface {
	Size() (w, h float64)
	// Fade paints c over the whole surface with the given alpha.
	Fade(c colorful.Color, alpha float64)
	FillCircle(x, y, r float64, c colorful.Color, glow float64)
	StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64)
	FillRect(x, y, w, h float64, c colorful.Color, glow float64)
	FillSector(cx, cy, r, start, end float64, c colorful.Color, glow float64)
	// ClearCircle erases everything inside the circle (destination-out).
	ClearCircle(cx, cy, r float64)
}

// Fixed colors shared by the backdrop.
var (
	Black  = MustHex("#000000")
	Cyan   = MustHex("#00ffff")
	Azure  = MustHex("#0077ff")
	Sky    = MustHex("#00ccff")
	Mint   = MustHex("#00ffaa")
	LineFg = Cyan
)

// DefaultPalette is the particle palette.
var DefaultPalette = []colorful.Color{Cyan, Azure, Sky, Mint}

// MustHex parses a #rrggbb color and panics on malformed input.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("surface: bad color %q: %v", s, err))
	}
	return c
}

// ParsePalette parses a list of #rrggbb colors.
func ParsePalette(hex []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("surface: palette color %q: %w", h, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Discard is a Surface of fixed size that draws nothing.
type Discard struct {
	W, H float64
}

func (d Discard) Size() (float64, float64)                                    { return d.W, d.H }
func (Discard) Fade(colorful.Color, float64)                                  {}
func (Discard) FillCircle(_, _, _ float64, _ colorful.Color, _ float64)       {}
func (Discard) StrokeLine(_, _, _, _, _ float64, _ colorful.Color, _ float64) {}
func (Discard) FillRect(_, _, _, _ float64, _ colorful.Color, _ float64)      {}
func (Discard) FillSector(_, _, _, _, _ float64, _ colorful.Color, _ float64) {}
func (Discard) ClearCircle(_, _, _ float64)                                   {}
