// Package chart draws the decorative bar and donut shapes of the backdrop.
//
// The shapes carry no data: bar lengths and slice angles oscillate with a
// shared phase so all three charts animate in step.
package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
)

const (
	VerticalBarCount   = 5
	HorizontalBarCount = 4
	SliceCount         = 4

	barGlow   = 20.0
	sliceGlow = 25.0
	holeRatio = 0.4
)

// Full-scale constants. Compact layouts multiply them by the profile scale.
const (
	verticalAmp    = 50.0
	verticalBase   = 80.0
	horizontalAmp  = 80.0
	horizontalBase = 150.0
	barGap         = 15.0
)

var (
	VerticalColor   = surface.Mint
	HorizontalColor = surface.Azure
	SliceColors     = []colorful.Color{surface.Cyan, surface.Azure, surface.Mint, surface.Sky}
)

// BarLength is amp·sin(phase+i) + base.
func BarLength(amp, base, phase float64, i int) float64 {
	return amp*math.Sin(phase+float64(i)) + base
}

// SliceAngles returns the start and end angle of slice i out of n, rotated by
// half the phase.
func SliceAngles(i, n int, phase float64) (start, end float64) {
	step := 2 * math.Pi / float64(n)
	return float64(i)*step + phase/2, float64(i+1)*step + phase/2
}

func gap(scale float64) float64 {
	return math.Floor(barGap * scale)
}

// VerticalBars draws five bars standing on the bottom edge of the w×h box at
// (x, y).
func VerticalBars(s surface.Surface, x, y, w, h, phase, scale float64) {
	bw := w / VerticalBarCount
	for i := 0; i < VerticalBarCount; i++ {
		bh := BarLength(verticalAmp*scale, verticalBase*scale, phase, i)
		s.FillRect(x+float64(i)*(bw+gap(scale)), y+h-bh, bw, bh, VerticalColor, barGlow)
	}
}

// HorizontalBars draws four bars growing right from the left edge of the w×h
// box at (x, y).
func HorizontalBars(s surface.Surface, x, y, w, h, phase, scale float64) {
	bh := h / HorizontalBarCount
	for i := 0; i < HorizontalBarCount; i++ {
		bw := BarLength(horizontalAmp*scale, horizontalBase*scale, phase, i)
		s.FillRect(x, y+float64(i)*(bh+gap(scale)), bw, bh, HorizontalColor, barGlow)
	}
}

// Pie draws a rotating four slice donut centered at (cx, cy). The slices use
// radius r·scale; the hole always uses 0.4·r.
func Pie(s surface.Surface, cx, cy, r, phase, scale float64) {
	for i := 0; i < SliceCount; i++ {
		start, end := SliceAngles(i, SliceCount, phase)
		s.FillSector(cx, cy, r*scale, start, end, SliceColors[i%len(SliceColors)], sliceGlow)
	}
	s.ClearCircle(cx, cy, r*holeRatio)
}

type Box struct {
	X, Y, W, H float64
}

// Placement positions the three charts on a surface.
type Placement struct {
	Horizontal Box
	Vertical   Box
	PieX, PieY float64
	PieR       float64
}

// Layout anchors the bar charts to the right edge and the donut to the center.
func Layout(w, h float64, compact bool) Placement {
	if compact {
		return Placement{
			Horizontal: Box{X: w - 180, Y: 60, W: 120, H: 60},
			Vertical:   Box{X: w - 180, Y: h - 120, W: 120, H: 75},
			PieX:       w / 2, PieY: h / 2, PieR: 40,
		}
	}
	return Placement{
		Horizontal: Box{X: w - 350, Y: 100, W: 250, H: 120},
		Vertical:   Box{X: w - 350, Y: h - 250, W: 250, H: 150},
		PieX:       w / 2, PieY: h / 2, PieR: 80,
	}
}

// DrawAll renders the three charts at their placement.
func DrawAll(s surface.Surface, p Placement, phase, scale float64) {
	HorizontalBars(s, p.Horizontal.X, p.Horizontal.Y, p.Horizontal.W, p.Horizontal.H, phase, scale)
	Pie(s, p.PieX, p.PieY, p.PieR, phase, scale)
	VerticalBars(s, p.Vertical.X, p.Vertical.Y, p.Vertical.W, p.Vertical.H, phase, scale)
}
