package config

import (
	"strings"
	"testing"

	"github.com/vovakirdan/color-stack/internal/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultColorStackConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ColorStackConfig)
		wantErr string
	}{
		{"zero field", func(c *ColorStackConfig) { c.Field.Width = 0 }, "field"},
		{"negative radius", func(c *ColorStackConfig) { c.Ball.Radius = -1 }, "ball.radius"},
		{"start_x out of range", func(c *ColorStackConfig) { c.Ball.StartX = 1.5 }, "ball.start_x"},
		{"stack too small", func(c *ColorStackConfig) { c.Obstacles.MinStack = 2 }, "min_stack"},
		{"max below min", func(c *ColorStackConfig) { c.Obstacles.MaxStack = 3 }, "max_stack"},
		{"negative overscan", func(c *ColorStackConfig) { c.Obstacles.Overscan = -1 }, "overscan"},
		{"zero duration", func(c *ColorStackConfig) { c.Obstacles.TranslateDuration = 0 }, "translate_duration"},
		{"zero interval", func(c *ColorStackConfig) { c.Spawn.Interval = 0 }, "spawn.interval"},
		{"single color palette", func(c *ColorStackConfig) { c.Palette = []core.Color{core.ColorRed} }, "at least 2"},
		{"palette only ball color", func(c *ColorStackConfig) {
			c.Palette = []core.Color{core.ColorRed, core.ColorRed}
		}, "other than the ball color"},
		{"unknown progression", func(c *ColorStackConfig) { c.Difficulty.Progression.Type = "lunar" }, "progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultColorStackConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultColorStackConfig()
	cfg.Ball.Radius = 0
	cfg.Spawn.Interval = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ball.radius") || !strings.Contains(err.Error(), "spawn.interval") {
		t.Errorf("error should list both problems, got %q", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != "" {
		t.Errorf("empty preset = %q, %v", got, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultColorStackConfig()

	t.Run("none", func(t *testing.T) {
		cfg := DefaultColorStackConfig()
		ApplyPreset(&cfg, "")
		if cfg.Difficulty.Enabled != base.Difficulty.Enabled || cfg.Spawn.Interval != base.Spawn.Interval {
			t.Error("empty preset should not change the config")
		}
	})

	t.Run("fixed", func(t *testing.T) {
		cfg := DefaultColorStackConfig()
		cfg.Difficulty.Enabled = true
		ApplyPreset(&cfg, DifficultyFixed)
		if cfg.Difficulty.Enabled {
			t.Error("fixed should disable progression")
		}
		if cfg.Obstacles != base.Obstacles {
			t.Error("fixed should keep obstacle pacing")
		}
	})

	t.Run("easy", func(t *testing.T) {
		cfg := DefaultColorStackConfig()
		ApplyPreset(&cfg, DifficultyEasy)
		if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0 {
			t.Errorf("difficulty = %+v", cfg.Difficulty)
		}
		if cfg.Obstacles.MaxStack != 6 {
			t.Errorf("max_stack = %d, expected 6", cfg.Obstacles.MaxStack)
		}
		if cfg.Spawn.Interval <= base.Spawn.Interval {
			t.Error("easy should spawn less often")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("easy config invalid: %v", err)
		}
	})

	t.Run("hard", func(t *testing.T) {
		cfg := DefaultColorStackConfig()
		ApplyPreset(&cfg, DifficultyHard)
		if cfg.Difficulty.InitialLevel != 0.7 {
			t.Errorf("initial level = %v", cfg.Difficulty.InitialLevel)
		}
		if cfg.Obstacles.MinStack != 5 {
			t.Errorf("min_stack = %d, expected 5", cfg.Obstacles.MinStack)
		}
		if cfg.Spawn.Interval >= base.Spawn.Interval {
			t.Error("hard should spawn more often")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("hard config invalid: %v", err)
		}
	})

	t.Run("progression none becomes score", func(t *testing.T) {
		cfg := DefaultColorStackConfig()
		cfg.Difficulty.Progression.Type = "none"
		ApplyPreset(&cfg, DifficultyNormal)
		if cfg.Difficulty.Progression.Type != "score" {
			t.Errorf("progression = %q", cfg.Difficulty.Progression.Type)
		}
	})
}
