package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, 80*time.Millisecond, Default().TickInterval())
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Gameplay.Lives)
	assert.Equal(t, 80, cfg.Gameplay.TickIntervalMs)
	assert.Equal(t, 10, cfg.Paddle.Width)
	assert.InDelta(t, 0.7, cfg.Bounce.RightZone, 1e-9)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("gameplay: [lives"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"fit terminal field", func(c *Config) { c.Field = FieldConfig{} }, true},
		{"zero lives", func(c *Config) { c.Gameplay.Lives = 0 }, false},
		{"zero tick", func(c *Config) { c.Gameplay.TickIntervalMs = 0 }, false},
		{"zero max level", func(c *Config) { c.Gameplay.MaxLevel = 0 }, false},
		{"zero paddle width", func(c *Config) { c.Paddle.Width = 0 }, false},
		{"negative paddle speed", func(c *Config) { c.Paddle.Speed = -1 }, false},
		{"narrow field", func(c *Config) { c.Field.Width = MinFieldWidth - 1 }, false},
		{"short field", func(c *Config) { c.Field.Height = MinFieldHeight - 1 }, false},
		{"negative field", func(c *Config) { c.Field.Height = -1 }, false},
		{"paddle wider than field", func(c *Config) { c.Field.Width = 20; c.Paddle.Width = 19 }, false},
		{"inverted zones", func(c *Config) { c.Bounce.LeftZone, c.Bounce.RightZone = 0.8, 0.2 }, false},
		{"zone above one", func(c *Config) { c.Bounce.RightZone = 1.5 }, false},
		{"minimum field", func(c *Config) { c.Field = FieldConfig{Width: MinFieldWidth, Height: MinFieldHeight} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestFitTerminal(t *testing.T) {
	cfg := Default()
	cfg.Field = FieldConfig{Width: 0, Height: 30}

	fit := cfg.FitTerminal(100, 40)
	assert.Equal(t, 98, fit.Field.Width)
	assert.Equal(t, 30, fit.Field.Height, "explicit height must be kept")

	fit = Default().FitTerminal(100, 40)
	assert.Equal(t, FieldConfig{Width: 60, Height: 24}, fit.Field)
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, 5, easy.Gameplay.Lives)
	assert.Equal(t, 14, easy.Paddle.Width)
	assert.Equal(t, 100, easy.Gameplay.TickIntervalMs)

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 2, hard.Gameplay.Lives)
	assert.Equal(t, 8, hard.Paddle.Width)
	assert.Equal(t, 64, hard.Gameplay.TickIntervalMs)

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Gameplay.SpeedScaling)
	assert.Equal(t, 3, fixed.Gameplay.Lives)

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, Default(), normal)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Local configs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, LocalPath), []byte("gameplay:\n  lives: 4\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Gameplay.Lives)

	// User directory wins over local.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".blockbreak"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".blockbreak", "config.yaml"), []byte("gameplay:\n  lives: 6\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Gameplay.Lives)

	// Custom path wins over everything.
	custom := filepath.Join(work, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("paddle:\n  width: 12\n"), 0o644))
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Paddle.Width)
	assert.Equal(t, 3, cfg.Gameplay.Lives)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [oops"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
