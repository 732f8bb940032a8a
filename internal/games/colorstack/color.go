package colorstack

import "github.com/vovakirdan/color-stack/internal/core"

const maxColorDraws = 64

// RandomColor returns a palette color different from the ball color,
// uniformly. Sampling is bounded; if every draw hits the ball color the
// pick falls back to a uniform choice among the other colors.
func (c *Controller) RandomColor() core.Color {
	palette := c.cfg.Palette
	for i := 0; i < maxColorDraws; i++ {
		col := palette[c.rng.Intn(len(palette))]
		if col != c.ballColor {
			return col
		}
	}

	others := make([]core.Color, 0, len(palette))
	for _, col := range palette {
		if col != c.ballColor {
			others = append(others, col)
		}
	}
	return others[c.rng.Intn(len(others))]
}
