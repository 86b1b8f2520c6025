package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS          = 45
	DefaultCompactBelow = 768.0
	DefaultTheme        = "cyberpunk"

	DefaultStartDelay     = 500 * time.Millisecond
	DefaultTypingSpeed    = 25 * time.Millisecond
	DefaultParagraphDelay = 400 * time.Millisecond

	// MaxParticles mirrors field.MaxParticles; config must not depend on field.
	MaxParticles = 100
)

var (
	ErrInvalidProfile   = errors.New("config: invalid profile")
	ErrTooManyParticles = errors.New("config: particle count above 100")
	ErrEmptyPalette     = errors.New("config: palette is empty")
	ErrInvalidFPS       = errors.New("config: negative fps")
)

type Config struct {
	// FPS is the backdrop frame rate; 0 renders on every refresh.
	FPS          int              `yaml:"fps"`
	Seed         int64            `yaml:"seed"`
	Theme        string           `yaml:"theme"`
	CompactBelow float64          `yaml:"compact_below"`
	Palette      []string         `yaml:"palette"`
	Profiles     ProfilesConfig   `yaml:"profiles"`
	Typewriter   TypewriterConfig `yaml:"typewriter"`
	Page         PageConfig       `yaml:"page"`
}

type ProfilesConfig struct {
	Compact Profile `yaml:"compact"`
	Full    Profile `yaml:"full"`
}

// Profile holds the density and scale constants of one viewport class.
type Profile struct {
	ParticleCount      int     `yaml:"particle_count"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	ChartScale         float64 `yaml:"chart_scale"`
	Glow               bool    `yaml:"glow"`
}

type TypewriterConfig struct {
	Paragraphs     []string      `yaml:"paragraphs"`
	StartDelay     time.Duration `yaml:"start_delay"`
	TypingSpeed    time.Duration `yaml:"typing_speed"`
	ParagraphDelay time.Duration `yaml:"paragraph_delay"`
}

type PageConfig struct {
	Title    string          `yaml:"title"`
	Sections []SectionConfig `yaml:"sections"`
	Resume   ResumeConfig    `yaml:"resume"`
}

// SectionConfig describes one page section. Cards, when present, belong to
// CardGroup and take part in the scroll reveal.
type SectionConfig struct {
	ID         string       `yaml:"id"`
	Title      string       `yaml:"title"`
	Body       []string     `yaml:"body,omitempty"`
	Highlights []string     `yaml:"highlights,omitempty"`
	CardGroup  string       `yaml:"card_group,omitempty"`
	Cards      []CardConfig `yaml:"cards,omitempty"`
}

type CardConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type ResumeConfig struct {
	Href     string `yaml:"href"`
	Filename string `yaml:"filename"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:          DefaultFPS,
		Theme:        DefaultTheme,
		CompactBelow: DefaultCompactBelow,
		Palette:      []string{"#00ffff", "#0077ff", "#00ccff", "#00ffaa"},
		Profiles: ProfilesConfig{
			Compact: Profiles["compact"],
			Full:    Profiles["full"],
		},
		Typewriter: TypewriterConfig{
			Paragraphs:     append([]string(nil), defaultParagraphs...),
			StartDelay:     DefaultStartDelay,
			TypingSpeed:    DefaultTypingSpeed,
			ParagraphDelay: DefaultParagraphDelay,
		},
		Page: defaultPage(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	for name, p := range map[string]Profile{"compact": c.Profiles.Compact, "full": c.Profiles.Full} {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}
	if c.CompactBelow < 0 {
		return fmt.Errorf("compact_below must not be negative, got %f", c.CompactBelow)
	}
	return nil
}

func (p Profile) Validate() error {
	if p.ParticleCount > MaxParticles {
		return fmt.Errorf("%w: %d", ErrTooManyParticles, p.ParticleCount)
	}
	if p.ParticleCount < 0 {
		return fmt.Errorf("%w: negative particle count %d", ErrInvalidProfile, p.ParticleCount)
	}
	if p.ConnectionDistance <= 0 {
		return fmt.Errorf("%w: connection distance must be positive, got %f", ErrInvalidProfile, p.ConnectionDistance)
	}
	if p.ChartScale <= 0 {
		return fmt.Errorf("%w: chart scale must be positive, got %f", ErrInvalidProfile, p.ChartScale)
	}
	return nil
}

// FrameBudget is the time between throttled frames. Zero fps means
// unthrottled and yields a zero budget.
func (c *Config) FrameBudget() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// Classify picks the viewport class for a viewport width.
func (c *Config) Classify(width float64) Class {
	if width < c.CompactBelow {
		return Compact
	}
	return Full
}

func (c *Config) Profile(cls Class) Profile {
	if cls == Compact {
		return c.Profiles.Compact
	}
	return c.Profiles.Full
}
