// Package config loads habit-splash settings from YAML over built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/habit-splash/audio"
	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/splash"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// MaxFPS bounds the frame rate
const MaxFPS = 120

// Config is the complete habit-splash configuration
type Config struct {
	Splash  SplashConfig  `yaml:"splash"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   bool          `yaml:"debug"`
}

// SplashConfig configures the animation
type SplashConfig struct {
	Phases PhaseConfig `yaml:"phases"`
	// Seed drives every random choice, 0 seeds from the clock
	Seed             uint64  `yaml:"seed"`
	GlyphCount       int     `yaml:"glyph_count"`
	Charset          string  `yaml:"charset"`
	GridSize         int     `yaml:"grid_size"`
	HabitProbability float64 `yaml:"habit_probability"`
	Title            string  `yaml:"title"`
	Subtitle         string  `yaml:"subtitle"`
	// Target is the route requested at the end
	Target string `yaml:"target"`
}

// PhaseConfig holds per-phase durations, e.g. "1800ms"
type PhaseConfig struct {
	Rain          time.Duration `yaml:"rain"`
	Grid          time.Duration `yaml:"grid"`
	Title         time.Duration `yaml:"title"`
	Pulse         time.Duration `yaml:"pulse"`
	Exit          time.Duration `yaml:"exit"`
	NavigateDelay time.Duration `yaml:"navigate_delay"`
}

// DisplayConfig configures the terminal host
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// AudioConfig configures sound cues
type AudioConfig struct {
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"`
	// Sound is the preferred reminder tone, played as the exit cue
	Sound string `yaml:"sound"`
	// TitleCue plays when the title appears, empty disables
	TitleCue string `yaml:"title_cue"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	d := splash.DefaultConfig()
	return &Config{
		Splash: SplashConfig{
			Phases: PhaseConfig{
				Rain:          d.Durations.Rain,
				Grid:          d.Durations.Grid,
				Title:         d.Durations.Title,
				Pulse:         d.Durations.Pulse,
				Exit:          d.Durations.Exit,
				NavigateDelay: d.Durations.NavigateDelay,
			},
			GlyphCount:       d.GlyphCount,
			Charset:          d.Charset,
			GridSize:         d.GridSize,
			HabitProbability: d.HabitProbability,
			Title:            d.Title,
			Subtitle:         d.Subtitle,
			Target:           d.Target,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
		Audio: AudioConfig{
			Volume:   parameter.AudioDefaultVolume,
			Sound:    parameter.AudioDefaultSound,
			TitleCue: d.TitleCue,
		},
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > MaxFPS {
		return fmt.Errorf("%w: display.fps must be in 1..%d, got %d", ErrInvalidConfig, MaxFPS, c.Display.FPS)
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		return fmt.Errorf("%w: audio.volume must be between 0 and 1, got %v", ErrInvalidConfig, c.Audio.Volume)
	}
	if _, ok := audio.ParseSound(c.Audio.Sound); !ok {
		return fmt.Errorf("%w: audio.sound %q is unknown", ErrInvalidConfig, c.Audio.Sound)
	}
	if c.Audio.TitleCue != "" {
		if _, ok := audio.ParseSound(c.Audio.TitleCue); !ok {
			return fmt.Errorf("%w: audio.title_cue %q is unknown", ErrInvalidConfig, c.Audio.TitleCue)
		}
	}
	if err := c.SplashConfig().Validate(); err != nil {
		return fmt.Errorf("%w: splash: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SplashConfig converts to the director's configuration
func (c *Config) SplashConfig() splash.Config {
	s := c.Splash
	cfg := splash.Config{
		Durations: splash.Durations{
			Rain:          s.Phases.Rain,
			Grid:          s.Phases.Grid,
			Title:         s.Phases.Title,
			Pulse:         s.Phases.Pulse,
			Exit:          s.Phases.Exit,
			NavigateDelay: s.Phases.NavigateDelay,
		},
		GlyphCount:       s.GlyphCount,
		Charset:          s.Charset,
		GridSize:         s.GridSize,
		HabitProbability: s.HabitProbability,
		Title:            s.Title,
		Subtitle:         s.Subtitle,
		Target:           s.Target,
	}
	if !c.Audio.Mute {
		cfg.TitleCue = c.Audio.TitleCue
		cfg.ExitCue = c.Audio.Sound
	}
	return cfg
}

// Load parses YAML over the defaults, unknown keys are rejected
func Load(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// SaveToFile writes the configuration as YAML, creating parent directories
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
