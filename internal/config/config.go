// Package config provides YAML-based game configuration loading and
// difficulty management for Color Stack.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/color-stack/internal/core"
)

// ColorStackConfig contains all tunables of the Color Stack game.
// Distances are world units (y grows upward), durations are seconds.
type ColorStackConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Palette    []core.Color     `yaml:"palette"`
	HUD        HUDConfig        `yaml:"hud"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the size of the playfield.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size returns the field as a core.Size.
func (f FieldConfig) Size() core.Size {
	return core.Size{W: f.Width, H: f.Height}
}

// BallConfig defines the player ball.
type BallConfig struct {
	Radius float64    `yaml:"radius"`
	Color  core.Color `yaml:"color"`
	StartX float64    `yaml:"start_x"` // fraction of field width
}

// ObstacleConfig defines the scrolling walls.
type ObstacleConfig struct {
	Width             float64 `yaml:"width"`
	MinStack          int     `yaml:"min_stack"`
	MaxStack          int     `yaml:"max_stack"`
	Overscan          int     `yaml:"overscan"` // extra slots below and above the field
	TranslateDuration float64 `yaml:"translate_duration"`
	Drift             float64 `yaml:"drift"`
}

// SpawnConfig defines the wall spawn timer.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"`
}

// HUDConfig defines the on-field label.
type HUDConfig struct {
	Prompt      string  `yaml:"prompt"`
	LabelOffset float64 `yaml:"label_offset"` // distance of the label below the top edge
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to wall speed at max difficulty
	MinDuration     float64 `yaml:"min_duration"`     // floor for translate_duration
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a preset name. The empty string is valid and means
// "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed disables progression and keeps the configured pacing.
func ApplyPreset(cfg *ColorStackConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MaxStack = max(cfg.Obstacles.MinStack, cfg.Obstacles.MaxStack-2)
		cfg.Spawn.Interval *= 1.2
	case DifficultyHard:
		cfg.Obstacles.MinStack = min(cfg.Obstacles.MaxStack, cfg.Obstacles.MinStack+1)
		cfg.Spawn.Interval *= 0.85
	}
}

// Validate reports every problem with the config at once.
func (c ColorStackConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		bad("field: width and height must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Ball.Radius <= 0 {
		bad("ball.radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Ball.StartX < 0 || c.Ball.StartX > 1 {
		bad("ball.start_x must be within [0, 1], got %v", c.Ball.StartX)
	}
	if c.Obstacles.Width <= 0 {
		bad("obstacles.width must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.MinStack < 3 {
		bad("obstacles.min_stack must be at least 3, got %d", c.Obstacles.MinStack)
	}
	if c.Obstacles.MaxStack < c.Obstacles.MinStack {
		bad("obstacles.max_stack (%d) is below min_stack (%d)", c.Obstacles.MaxStack, c.Obstacles.MinStack)
	}
	if c.Obstacles.Overscan < 0 {
		bad("obstacles.overscan must not be negative, got %d", c.Obstacles.Overscan)
	}
	if c.Obstacles.TranslateDuration <= 0 {
		bad("obstacles.translate_duration must be positive, got %v", c.Obstacles.TranslateDuration)
	}
	if c.Obstacles.Drift < 0 {
		bad("obstacles.drift must not be negative, got %v", c.Obstacles.Drift)
	}
	if c.Spawn.Interval <= 0 {
		bad("spawn.interval must be positive, got %v", c.Spawn.Interval)
	}
	if len(c.Palette) < 2 {
		bad("palette needs at least 2 colors, got %d", len(c.Palette))
	} else if !hasOtherColor(c.Palette, c.Ball.Color) {
		bad("palette has no color other than the ball color %s", c.Ball.Color)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		bad("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		bad("difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

func hasOtherColor(palette []core.Color, ball core.Color) bool {
	for _, c := range palette {
		if c != ball {
			return true
		}
	}
	return false
}
