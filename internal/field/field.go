package field

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
	"gonum.org/v1/gonum/spatial/r2"
)

// MaxParticles bounds the field size. Connections are found by comparing every
// pair each frame, so the count has to stay small.
const MaxParticles = 100

// LineWidth is the stroke width of connection lines.
const LineWidth = 0.4

var (
	ErrTooManyParticles = errors.New("field: particle count above limit")
	ErrNegativeCount    = errors.New("field: negative particle count")
	ErrEmptyPalette     = errors.New("field: empty palette")
)

// Edge connects particles A and B (indices, A < B) with the given line opacity.
type Edge struct {
	A, B    int
	Opacity float64
}

// Field owns the particles of the backdrop and the surface bounds they bounce in.
type Field struct {
	rng       *rand.Rand
	palette   []colorful.Color
	particles []Particle
	w, h      float64
}

// New creates count particles spread over a w×h surface.
func New(rng *rand.Rand, count int, w, h float64, palette []colorful.Color) (*Field, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	f := &Field{rng: rng, palette: palette, w: w, h: h}
	f.particles = make([]Particle, 0, count)
	f.grow(count)
	return f, nil
}

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > MaxParticles {
		return fmt.Errorf("%w: %d > %d", ErrTooManyParticles, n, MaxParticles)
	}
	return nil
}

func (f *Field) grow(n int) {
	for len(f.particles) < n {
		f.particles = append(f.particles, NewParticle(f.rng, f.w, f.h, f.palette))
	}
}

func (f *Field) Len() int               { return len(f.particles) }
func (f *Field) Particles() []Particle  { return f.particles }
func (f *Field) Bounds() (w, h float64) { return f.w, f.h }

// Resize changes the bounce box. Particles outside the new box drift back in
// through the normal reflection rule.
func (f *Field) Resize(w, h float64) {
	f.w, f.h = w, h
}

// SetCount trims or extends the particle set, keeping existing particles.
func (f *Field) SetCount(n int) error {
	if err := checkCount(n); err != nil {
		return err
	}
	if n < len(f.particles) {
		f.particles = f.particles[:n]
		return nil
	}
	f.grow(n)
	return nil
}

// Step advances every particle once.
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].Update(f.w, f.h)
	}
}

// Connections returns every pair closer than maxDistance.
func (f *Field) Connections(maxDistance float64) []Edge {
	if maxDistance <= 0 {
		return nil
	}
	limit := maxDistance * maxDistance
	var edges []Edge
	for a := 0; a < len(f.particles); a++ {
		for b := a + 1; b < len(f.particles); b++ {
			d2 := r2.Norm2(r2.Sub(f.particles[a].Pos, f.particles[b].Pos))
			if d2 < limit {
				edges = append(edges, Edge{A: a, B: b, Opacity: Opacity(math.Sqrt(d2), maxDistance)})
			}
		}
	}
	return edges
}

// Opacity falls linearly from 1 at distance 0 to 0 at maxDistance.
func Opacity(distance, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	o := 1 - distance/maxDistance
	return math.Max(0, math.Min(1, o))
}

// Draw renders the particles and then the connection lines between them.
func (f *Field) Draw(s surface.Surface, maxDistance float64, glow bool) {
	for i := range f.particles {
		f.particles[i].Draw(s, glow)
	}
	for _, e := range f.Connections(maxDistance) {
		a, b := f.particles[e.A].Pos, f.particles[e.B].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, LineWidth, surface.LineFg, e.Opacity)
	}
}
