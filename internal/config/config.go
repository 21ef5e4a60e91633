// Package config provides YAML-based game configuration loading and
// difficulty presets for Block Break.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Play-field limits. The tallest level needs eight block rows above the
// paddle, so shorter fields are rejected rather than silently overlapping.
const (
	MinFieldWidth  = 20
	MinFieldHeight = 22
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for a Block Break session.
// It is read once when a session starts and never mutated by the game.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Field    FieldConfig    `yaml:"field"`
	Bounce   BounceConfig   `yaml:"bounce"`
}

// GameplayConfig defines lives, pacing and campaign length.
type GameplayConfig struct {
	Lives          int  `yaml:"lives"`
	TickIntervalMs int  `yaml:"tick_interval_ms"`
	MaxLevel       int  `yaml:"max_level"`
	SpeedScaling   bool `yaml:"speed_scaling"` // shorten the tick interval as levels increase
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width int `yaml:"width"`
	Speed int `yaml:"speed"` // cells per key press
}

// FieldConfig defines the play-field size in cells, border excluded.
// Zero means "fit the terminal".
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BounceConfig defines the paddle impact zones as fractions of paddle width.
// Hits left of LeftZone send the ball left, hits right of RightZone send it right.
type BounceConfig struct {
	LeftZone  float64 `yaml:"left_zone"`
	RightZone float64 `yaml:"right_zone"`
}

// TickInterval returns the base simulation interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Gameplay.TickIntervalMs) * time.Millisecond
}

// FitTerminal resolves zero field dimensions from the terminal size.
// The frame around the field takes two columns, and the border plus the
// two status lines take four rows.
func (c Config) FitTerminal(termW, termH int) Config {
	if c.Field.Width == 0 {
		c.Field.Width = termW - 2
	}
	if c.Field.Height == 0 {
		c.Field.Height = termH - 4
	}
	return c
}

// Validate reports the first invalid setting, wrapped with ErrInvalid.
// Zero field dimensions are accepted; call FitTerminal to resolve them.
func (c Config) Validate() error {
	switch {
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Gameplay.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick_interval_ms must be positive, got %d", ErrInvalid, c.Gameplay.TickIntervalMs)
	case c.Gameplay.MaxLevel <= 0:
		return fmt.Errorf("%w: max_level must be positive, got %d", ErrInvalid, c.Gameplay.MaxLevel)
	case c.Paddle.Width <= 0:
		return fmt.Errorf("%w: paddle width must be positive, got %d", ErrInvalid, c.Paddle.Width)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive, got %d", ErrInvalid, c.Paddle.Speed)
	case c.Field.Width < 0 || c.Field.Height < 0:
		return fmt.Errorf("%w: field size must not be negative, got %dx%d", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Field.Width != 0 && c.Field.Width < MinFieldWidth:
		return fmt.Errorf("%w: field width %d is below minimum %d", ErrInvalid, c.Field.Width, MinFieldWidth)
	case c.Field.Height != 0 && c.Field.Height < MinFieldHeight:
		return fmt.Errorf("%w: field height %d is below minimum %d", ErrInvalid, c.Field.Height, MinFieldHeight)
	case c.Field.Width != 0 && c.Paddle.Width > c.Field.Width-2:
		return fmt.Errorf("%w: paddle width %d does not fit field width %d", ErrInvalid, c.Paddle.Width, c.Field.Width)
	case c.Bounce.LeftZone < 0 || c.Bounce.RightZone > 1 || c.Bounce.LeftZone > c.Bounce.RightZone:
		return fmt.Errorf("%w: bounce zones must satisfy 0 <= left_zone <= right_zone <= 1, got %.2f/%.2f",
			ErrInvalid, c.Bounce.LeftZone, c.Bounce.RightZone)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 14
		cfg.Gameplay.TickIntervalMs = cfg.Gameplay.TickIntervalMs * 5 / 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 8
		cfg.Gameplay.TickIntervalMs = cfg.Gameplay.TickIntervalMs * 4 / 5
	case DifficultyFixed:
		cfg.Gameplay.SpeedScaling = false
	}
}
