package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/habit-splash/splash"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 60, cfg.Display.FPS)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, "bell", cfg.Audio.Sound)
	assert.Equal(t, "/login", cfg.Splash.Target)
	assert.Equal(t, 1800*time.Millisecond, cfg.Splash.Phases.Rain)
	assert.Equal(t, splash.DefaultDurations(), cfg.SplashConfig().Durations)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"fps zero", func(c *Config) { c.Display.FPS = 0 }, true},
		{"fps too high", func(c *Config) { c.Display.FPS = 500 }, true},
		{"volume too high", func(c *Config) { c.Audio.Volume = 1.5 }, true},
		{"volume negative", func(c *Config) { c.Audio.Volume = -0.1 }, true},
		{"unknown sound", func(c *Config) { c.Audio.Sound = "kazoo" }, true},
		{"unknown title cue", func(c *Config) { c.Audio.TitleCue = "kazoo" }, true},
		{"title cue disabled", func(c *Config) { c.Audio.TitleCue = "" }, false},
		{"zero phase", func(c *Config) { c.Splash.Phases.Pulse = 0 }, true},
		{"negative delay", func(c *Config) { c.Splash.Phases.NavigateDelay = -time.Second }, true},
		{"grid too large", func(c *Config) { c.Splash.GridSize = 64 }, true},
		{"probability above one", func(c *Config) { c.Splash.HabitProbability = 2 }, true},
		{"empty target", func(c *Config) { c.Splash.Target = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig), "error should wrap ErrInvalidConfig: %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWrapsSplashError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Splash.GridSize = 0
	err := cfg.Validate()
	assert.True(t, errors.Is(err, splash.ErrInvalidConfig))
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
splash:
  seed: 42
  grid_size: 5
  phases:
    rain: 900ms
    navigate_delay: 1s
display:
  fps: 30
audio:
  mute: true
  sound: chime
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(42), cfg.Splash.Seed)
	assert.Equal(t, 5, cfg.Splash.GridSize)
	assert.Equal(t, 900*time.Millisecond, cfg.Splash.Phases.Rain)
	assert.Equal(t, time.Second, cfg.Splash.Phases.NavigateDelay)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, "chime", cfg.Audio.Sound)

	// Untouched keys keep their defaults
	assert.Equal(t, 2000*time.Millisecond, cfg.Splash.Phases.Grid)
	assert.Equal(t, "HABIT TRACKER", cfg.Splash.Title)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
}

func TestLoadEmptyIsDefault(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load([]byte("splash:\n  colour: red\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := Load([]byte("display: [fps"))
	assert.Error(t, err)

	_, err = Load([]byte("splash:\n  phases:\n    rain: soon\n"))
	assert.Error(t, err)
}

func TestMuteDisablesCues(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.SplashConfig()
	assert.Equal(t, "chime", sc.TitleCue)
	assert.Equal(t, "bell", sc.ExitCue)

	cfg.Audio.Mute = true
	sc = cfg.SplashConfig()
	assert.Empty(t, sc.TitleCue)
	assert.Empty(t, sc.ExitCue)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "habit-splash.yaml")

	cfg := DefaultConfig()
	cfg.Splash.Seed = 7
	cfg.Audio.Sound = "nature"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
