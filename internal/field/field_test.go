package field

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/folio/internal/surface"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestField(t *testing.T, n int, w, h float64) *Field {
	t.Helper()
	f, err := New(rand.New(rand.NewSource(7)), n, w, h, surface.DefaultPalette)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return f
}

func TestNewParticle_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		p := NewParticle(rng, 800, 600, surface.DefaultPalette)
		if p.Pos.X < 0 || p.Pos.X > 800 || p.Pos.Y < 0 || p.Pos.Y > 600 {
			t.Fatalf("particle spawned outside surface: %v", p.Pos)
		}
		if math.Abs(p.Vel.X) > maxSpeed || math.Abs(p.Vel.Y) > maxSpeed {
			t.Fatalf("speed out of range: %v", p.Vel)
		}
		if p.Size < 1 || p.Size >= 3 {
			t.Fatalf("size out of range: %f", p.Size)
		}
	}
}

func TestNewParticle_Deterministic(t *testing.T) {
	a := NewParticle(rand.New(rand.NewSource(42)), 100, 100, surface.DefaultPalette)
	b := NewParticle(rand.New(rand.NewSource(42)), 100, 100, surface.DefaultPalette)
	if a != b {
		t.Errorf("same seed produced different particles: %+v vs %+v", a, b)
	}
}

func TestParticleUpdate_Bounces(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		wantVel r2.Vec
	}{
		{"left wall", r2.Vec{X: 0.1, Y: 50}, r2.Vec{X: -0.3, Y: 0}, r2.Vec{X: 0.3, Y: 0}},
		{"right wall", r2.Vec{X: 99.9, Y: 50}, r2.Vec{X: 0.3, Y: 0}, r2.Vec{X: -0.3, Y: 0}},
		{"top wall", r2.Vec{X: 50, Y: 0.1}, r2.Vec{X: 0, Y: -0.2}, r2.Vec{X: 0, Y: 0.2}},
		{"bottom wall", r2.Vec{X: 50, Y: 99.9}, r2.Vec{X: 0, Y: 0.2}, r2.Vec{X: 0, Y: -0.2}},
		{"inside", r2.Vec{X: 50, Y: 50}, r2.Vec{X: 0.1, Y: 0.1}, r2.Vec{X: 0.1, Y: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Pos: tt.pos, Vel: tt.vel, Size: 1}
			p.Update(100, 100)
			if p.Vel != tt.wantVel {
				t.Errorf("velocity = %v, want %v", p.Vel, tt.wantVel)
			}
		})
	}
}

func TestFieldStep_StaysNearBounds(t *testing.T) {
	const w, h = 320.0, 200.0
	f := newTestField(t, MaxParticles, w, h)

	for i := 0; i < 5000; i++ {
		f.Step()
		for _, p := range f.Particles() {
			slack := math.Max(math.Abs(p.Vel.X), math.Abs(p.Vel.Y))
			if p.Pos.X < -slack || p.Pos.X > w+slack || p.Pos.Y < -slack || p.Pos.Y > h+slack {
				t.Fatalf("step %d: particle drifted out: %v (slack %f)", i, p.Pos, slack)
			}
		}
	}
}

func TestOpacity(t *testing.T) {
	if got := Opacity(0, 120); got != 1 {
		t.Errorf("Opacity(0) = %f, want 1", got)
	}
	if got := Opacity(120, 120); got != 0 {
		t.Errorf("Opacity(max) = %f, want 0", got)
	}
	prev := 1.0
	for d := 1.0; d <= 120; d++ {
		o := Opacity(d, 120)
		if o > prev {
			t.Fatalf("opacity increased at d=%f: %f > %f", d, o, prev)
		}
		prev = o
	}
	if got := Opacity(200, 120); got != 0 {
		t.Errorf("Opacity beyond max = %f, want 0", got)
	}
}

func TestConnections(t *testing.T) {
	f := newTestField(t, 0, 500, 500)
	f.particles = []Particle{
		{Pos: r2.Vec{X: 0, Y: 0}},
		{Pos: r2.Vec{X: 30, Y: 40}},
		{Pos: r2.Vec{X: 300, Y: 300}},
	}

	edges := f.Connections(100)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %v", len(edges), edges)
	}
	e := edges[0]
	if e.A != 0 || e.B != 1 {
		t.Errorf("unexpected edge %v", e)
	}
	if math.Abs(e.Opacity-0.5) > 1e-12 {
		t.Errorf("opacity = %f, want 0.5", e.Opacity)
	}

	if got := f.Connections(50); len(got) != 0 {
		t.Errorf("distance exactly at threshold must not connect, got %v", got)
	}
}

func TestFieldDraw(t *testing.T) {
	f := newTestField(t, 0, 500, 500)
	f.particles = []Particle{
		{Pos: r2.Vec{X: 10, Y: 10}, Size: 2, Color: surface.Cyan},
		{Pos: r2.Vec{X: 20, Y: 10}, Size: 2, Color: surface.Mint},
	}
	rec := surface.NewRecorder(500, 500)
	f.Draw(rec, 120, true)

	if rec.Count(surface.OpCircle) != 2 {
		t.Errorf("expected 2 circles, got %d", rec.Count(surface.OpCircle))
	}
	lines := rec.Filter(surface.OpLine)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Args[4] != LineWidth {
		t.Errorf("line width = %f", lines[0].Args[4])
	}
	if rec.Filter(surface.OpCircle)[0].Glow != GlowBlur {
		t.Error("glow not applied")
	}

	rec.Reset()
	f.Draw(rec, 120, false)
	if rec.Filter(surface.OpCircle)[0].Glow != 0 {
		t.Error("glow applied while disabled")
	}
}

func TestNew_Limits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := New(rng, MaxParticles+1, 10, 10, surface.DefaultPalette); !errors.Is(err, ErrTooManyParticles) {
		t.Errorf("expected ErrTooManyParticles, got %v", err)
	}
	if _, err := New(rng, -1, 10, 10, surface.DefaultPalette); !errors.Is(err, ErrNegativeCount) || errors.Is(err, ErrTooManyParticles) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
	if _, err := New(rng, 10, 10, 10, nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}
}

func TestSetCount(t *testing.T) {
	f := newTestField(t, 40, 300, 300)
	first := f.Particles()[0]

	if err := f.SetCount(100); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 100 {
		t.Errorf("Len = %d, want 100", f.Len())
	}
	if f.Particles()[0] != first {
		t.Error("existing particle changed on grow")
	}

	if err := f.SetCount(10); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 10 {
		t.Errorf("Len = %d, want 10", f.Len())
	}
	if err := f.SetCount(101); !errors.Is(err, ErrTooManyParticles) {
		t.Errorf("expected ErrTooManyParticles, got %v", err)
	}
	if err := f.SetCount(-3); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
	if f.Len() != 10 {
		t.Errorf("failed SetCount changed Len to %d", f.Len())
	}
}

func BenchmarkConnections(b *testing.B) {
	f, _ := New(rand.New(rand.NewSource(3)), MaxParticles, 1280, 720, surface.DefaultPalette)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step()
		_ = f.Connections(120)
	}
}

func TestParticleUpdate_ReturnsAfterShrink(t *testing.T) {
	p := Particle{Pos: r2.Vec{X: 500, Y: 50}, Vel: r2.Vec{X: 0.25, Y: 0}}
	for i := 0; i < 4000; i++ {
		p.Update(100, 100)
	}
	if p.Pos.X > 100+0.25 {
		t.Errorf("particle still stranded at x=%f", p.Pos.X)
	}
}
