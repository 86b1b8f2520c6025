package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != 45 {
		t.Errorf("expected fps 45, got %d", cfg.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if len(cfg.Typewriter.Paragraphs) != 3 {
		t.Errorf("expected 3 paragraphs, got %d", len(cfg.Typewriter.Paragraphs))
	}
	if cfg.Typewriter.TypingSpeed != 25*time.Millisecond {
		t.Errorf("unexpected typing speed %v", cfg.Typewriter.TypingSpeed)
	}
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		width float64
		want  Class
		count int
	}{
		{320, Compact, 40},
		{767, Compact, 40},
		{768, Full, 100},
		{1920, Full, 100},
	}

	for _, tt := range tests {
		cls := cfg.Classify(tt.width)
		if cls != tt.want {
			t.Errorf("width %.0f: class %s, want %s", tt.width, cls, tt.want)
		}
		if got := cfg.Profile(cls).ParticleCount; got != tt.count {
			t.Errorf("width %.0f: %d particles, want %d", tt.width, got, tt.count)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    error
	}{
		{"too many", Profile{ParticleCount: 101, ConnectionDistance: 1, ChartScale: 1}, ErrTooManyParticles},
		{"negative count", Profile{ParticleCount: -1, ConnectionDistance: 1, ChartScale: 1}, ErrInvalidProfile},
		{"zero distance", Profile{ParticleCount: 10, ChartScale: 1}, ErrInvalidProfile},
		{"zero scale", Profile{ParticleCount: 10, ConnectionDistance: 1}, ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.profile.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	p, ok := GetProfile("compact")
	if !ok {
		t.Fatal("expected compact profile")
	}
	if p.ConnectionDistance != 80 || p.Glow {
		t.Errorf("unexpected compact profile %+v", p)
	}
	if _, ok := GetProfile("nonexistent"); ok {
		t.Error("expected miss for nonexistent profile")
	}
	if names := ListProfiles(); len(names) != 2 || names[0] != "compact" {
		t.Errorf("ListProfiles() = %v", names)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	cfg := DefaultConfig()
	cfg.FPS = 30
	cfg.Profiles.Full.ConnectionDistance = 150

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.FPS != 30 || loaded.Profiles.Full.ConnectionDistance != 150 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Typewriter.ParagraphDelay != DefaultParagraphDelay {
		t.Errorf("paragraph delay = %v", loaded.Typewriter.ParagraphDelay)
	}
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "fps: 60\ntypewriter:\n  typing_speed: 10ms\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 60 || cfg.Typewriter.TypingSpeed != 10*time.Millisecond {
		t.Errorf("overrides not applied: fps=%d speed=%v", cfg.FPS, cfg.Typewriter.TypingSpeed)
	}
	if cfg.Profiles.Compact.ParticleCount != 40 {
		t.Error("defaults lost for unspecified keys")
	}
}

func TestLoad_RejectsTooManyParticles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "profiles:\n  full:\n    particle_count: 500\n    connection_distance: 120\n    chart_scale: 1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrTooManyParticles) {
		t.Errorf("expected ErrTooManyParticles, got %v", err)
	}
}

func TestValidate_FPS(t *testing.T) {
	tests := []struct {
		name   string
		fps    int
		err    error
		budget time.Duration
	}{
		{"default", 45, nil, time.Second / 45},
		{"unthrottled", 0, nil, 0},
		{"negative", -1, ErrInvalidFPS, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.FPS = tt.fps
			if err := cfg.Validate(); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if got := cfg.FrameBudget(); got != tt.budget {
				t.Errorf("expected budget %v, got %v", tt.budget, got)
			}
		})
	}
}

func TestLoad_UnthrottledFPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 0 || cfg.FrameBudget() != 0 {
		t.Errorf("expected unthrottled config, got fps=%d budget=%v", cfg.FPS, cfg.FrameBudget())
	}
}
