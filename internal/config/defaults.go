package config

import (
	_ "embed"

	"github.com/vovakirdan/color-stack/internal/core"
)

//go:embed defaults/colorstack.yaml
var defaultColorStackYAML []byte

// DefaultColorStackConfig returns the built-in configuration. It matches
// defaults/colorstack.yaml and is used when the embedded file cannot be parsed.
func DefaultColorStackConfig() ColorStackConfig {
	return ColorStackConfig{
		Field: FieldConfig{
			Width:  1334,
			Height: 750,
		},
		Ball: BallConfig{
			Radius: 20,
			Color:  core.ColorRed,
			StartX: 0.25,
		},
		Obstacles: ObstacleConfig{
			Width:             200,
			MinStack:          4,
			MaxStack:          8,
			Overscan:          1,
			TranslateDuration: 3.0,
			Drift:             250,
		},
		Spawn: SpawnConfig{
			Interval: 1.5,
		},
		Palette: []core.Color{
			core.ColorRed,
			core.ColorBlue,
			core.ColorGray,
			core.ColorGreen,
			core.ColorMagenta,
			core.ColorOrange,
			core.ColorPurple,
		},
		HUD: HUDConfig{
			Prompt:      "Tap to start",
			LabelOffset: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				MinDuration:     1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColorStackYAML
}
