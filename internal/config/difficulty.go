package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns base scaled by the current level: base at level 0,
// base*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Duration returns how long a wall takes to cross the field. It shrinks as
// the speed grows and never drops below min_duration (or base, if base is
// already shorter). Disabled progression returns base unchanged.
func (d *DifficultyManager) Duration(base float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	scaled := base / d.Speed(1.0, score, ticks)
	floor := math.Min(base, d.cfg.Scaling.MinDuration)
	return math.Max(scaled, floor)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
