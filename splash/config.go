package splash

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/habit-splash/parameter"
)

// Errors
var (
	ErrNoSurface     = errors.New("drawing surface unavailable")
	ErrNoNavigator   = errors.New("navigator required")
	ErrInvalidConfig = errors.New("invalid splash config")
)

// MaxGridSize bounds the grid dimension
const MaxGridSize = 32

// Config tunes one splash run
type Config struct {
	Durations        Durations
	GlyphCount       int
	Charset          string
	GridSize         int
	HabitProbability float64
	Title            string
	Subtitle         string

	// Target is the route requested once the sequence ends
	Target string

	// Sound cues, empty disables; played on entering title reveal and exit
	TitleCue string
	ExitCue  string
}

// DefaultConfig returns the stock splash
func DefaultConfig() Config {
	return Config{
		Durations:        DefaultDurations(),
		GlyphCount:       parameter.GlyphCount,
		Charset:          parameter.GlyphCharset,
		GridSize:         parameter.GridSize,
		HabitProbability: parameter.HabitProbability,
		Title:            parameter.SplashTitle,
		Subtitle:         parameter.SplashSubtitle,
		Target:           parameter.SplashTarget,
		TitleCue:         "chime",
		ExitCue:          "bell",
	}
}

// Validate checks every field, wrapping ErrInvalidConfig
func (c Config) Validate() error {
	d := c.Durations
	for _, p := range []Phase{PhaseRain, PhaseGridActivation, PhaseTitleReveal, PhasePulse, PhaseExit} {
		if d.Of(p) <= 0 {
			return fmt.Errorf("%w: %s duration must be positive, got %v", ErrInvalidConfig, p, d.Of(p))
		}
	}
	if d.NavigateDelay < 0 {
		return fmt.Errorf("%w: navigate delay must not be negative, got %v", ErrInvalidConfig, d.NavigateDelay)
	}
	if c.GlyphCount < 0 {
		return fmt.Errorf("%w: glyph count must not be negative, got %d", ErrInvalidConfig, c.GlyphCount)
	}
	if c.Charset == "" {
		return fmt.Errorf("%w: charset is empty", ErrInvalidConfig)
	}
	if c.GridSize < 1 || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size must be in 1..%d, got %d", ErrInvalidConfig, MaxGridSize, c.GridSize)
	}
	if !(c.HabitProbability >= 0 && c.HabitProbability <= 1) {
		return fmt.Errorf("%w: habit probability must be in [0,1], got %v", ErrInvalidConfig, c.HabitProbability)
	}
	if c.Target == "" {
		return fmt.Errorf("%w: target route is empty", ErrInvalidConfig)
	}
	return nil
}
