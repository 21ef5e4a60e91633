package config

import (
	_ "embed"
)

//go:embed defaults/blockbreak.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/blockbreak.yaml.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			Lives:          3,
			TickIntervalMs: 80,
			MaxLevel:       10,
			SpeedScaling:   true,
		},
		Paddle: PaddleConfig{
			Width: 10,
			Speed: 3,
		},
		Field: FieldConfig{
			Width:  60,
			Height: 24,
		},
		Bounce: BounceConfig{
			LeftZone:  0.3,
			RightZone: 0.7,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
