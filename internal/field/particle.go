package field

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// GlowBlur is the blur radius applied around particles when glow is on.
	GlowBlur = 15.0

	minSize   = 1.0
	sizeRange = 2.0
	maxSpeed  = 0.3
)

// Particle is one moving point of the backdrop.
type Particle struct {
	Pos   r2.Vec
	Vel   r2.Vec
	Size  float64
	Color colorful.Color
}

// NewParticle places a particle uniformly inside a w×h surface with a small
// random velocity. The palette must not be empty.
func NewParticle(rng *rand.Rand, w, h float64, palette []colorful.Color) Particle {
	return Particle{
		Pos: r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel: r2.Vec{
			X: rng.Float64()*2*maxSpeed - maxSpeed,
			Y: rng.Float64()*2*maxSpeed - maxSpeed,
		},
		Size:  rng.Float64()*sizeRange + minSize,
		Color: palette[rng.Intn(len(palette))],
	}
}

// Update moves the particle one step and reflects its velocity on any axis
// where it left the [0,w]×[0,h] box. The position itself is not clamped.
// Only outward velocity is reflected; a particle left outside by a resize
// walks back in.
func (p *Particle) Update(w, h float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)
	if (p.Pos.X < 0 && p.Vel.X < 0) || (p.Pos.X > w && p.Vel.X > 0) {
		p.Vel.X = -p.Vel.X
	}
	if (p.Pos.Y < 0 && p.Vel.Y < 0) || (p.Pos.Y > h && p.Vel.Y > 0) {
		p.Vel.Y = -p.Vel.Y
	}
}

// Draw renders the particle as a filled circle. glow of false draws it flat.
func (p *Particle) Draw(s surface.Surface, glow bool) {
	blur := 0.0
	if glow {
		blur = GlowBlur
	}
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Size, p.Color, blur)
}
