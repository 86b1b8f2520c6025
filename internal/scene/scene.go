// Package scene owns the animated backdrop state: the particle field, the
// shared chart phase and the viewport profile in effect.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/chart"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/frame"
	"github.com/san-kum/folio/internal/surface"
)

const (
	// PhaseStep is added to the chart phase every frame.
	PhaseStep = 0.02
	// FadeAlpha is the opacity of the black wash painted before each frame.
	FadeAlpha = 0.98
)

type Scene struct {
	cfg     *config.Config
	field   *field.Field
	class   config.Class
	profile config.Profile
	layout  chart.Placement
	phase   float64
	w, h    float64
	frames  int
}

// New builds the scene for a w×h surface. The random source seeds the
// particles; pass a fixed seed for reproducible frames.
func New(cfg *config.Config, rng *rand.Rand, w, h float64) (*Scene, error) {
	palette, err := surface.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return newScene(cfg, rng, palette, w, h)
}

func newScene(cfg *config.Config, rng *rand.Rand, palette []colorful.Color, w, h float64) (*Scene, error) {
	s := &Scene{cfg: cfg, w: w, h: h}
	s.class = cfg.Classify(w)
	s.profile = cfg.Profile(s.class)
	f, err := field.New(rng, s.profile.ParticleCount, w, h, palette)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.field = f
	s.layout = chart.Layout(w, h, s.class == config.Compact)
	return s, nil
}

// Resize updates the surface bounds and re-derives the viewport class. A
// class change adjusts the particle count to the new profile.
func (s *Scene) Resize(w, h float64) error {
	s.w, s.h = w, h
	s.field.Resize(w, h)
	cls := s.cfg.Classify(w)
	if cls != s.class {
		s.class = cls
		s.profile = s.cfg.Profile(cls)
		if err := s.field.SetCount(s.profile.ParticleCount); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
	}
	s.layout = chart.Layout(w, h, s.class == config.Compact)
	return nil
}

func (s *Scene) Class() config.Class     { return s.class }
func (s *Scene) Profile() config.Profile { return s.profile }
func (s *Scene) Phase() float64          { return s.phase }
func (s *Scene) Frames() int             { return s.frames }
func (s *Scene) Field() *field.Field     { return s.field }
func (s *Scene) Size() (w, h float64)    { return s.w, s.h }

// RenderFrame fades the surface, advances and draws the particle field,
// advances the phase, then draws the charts.
func (s *Scene) RenderFrame(surf surface.Surface) {
	surf.Fade(surface.Black, FadeAlpha)
	s.field.Step()
	s.field.Draw(surf, s.profile.ConnectionDistance, s.profile.Glow)
	s.phase += PhaseStep
	chart.DrawAll(surf, s.layout, s.phase, s.profile.ChartScale)
	s.frames++
}

// Renderer binds the scene to a surface for a frame.Scheduler.
func (s *Scene) Renderer(surf surface.Surface) frame.Renderer {
	return frame.RendererFunc(func() { s.RenderFrame(surf) })
}
