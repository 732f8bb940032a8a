package colorstack

import (
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/engine"
)

const (
	obstacleGlyph = '█'
	coinGlyph     = '▓'
)

// spawnStack builds one wall just past the right edge and sends it across
// the field. The wall removes itself when the move completes; a frozen
// wall has no action left and stays.
func (c *Controller) spawnStack() {
	size := c.scene.Size()
	oc := c.cfg.Obstacles

	count := oc.MinStack + c.rng.Intn(oc.MaxStack-oc.MinStack+1)
	height := size.H / float64(count)
	coin := 1 + c.rng.Intn(count-2)

	stack := c.scene.AddChild(engine.NodeSpec{Name: StackName})
	x := size.W + oc.Width
	for slot := -oc.Overscan; slot < count+oc.Overscan; slot++ {
		frame := core.RectF{X: x, Y: float64(slot) * height, W: oc.Width, H: height}
		if slot == coin {
			stack.AddChild(block(RoleCoin, c.ballColor, frame))
		} else {
			stack.AddChild(block(RoleObstacle, c.RandomColor(), frame))
		}
	}

	dy := oc.Drift * float64(c.rng.Intn(3)-1)
	stack.Run(engine.MoveBy{
		DX:       -(size.W + 2*oc.Width),
		DY:       dy,
		Duration: c.duration,
	}, stack.RemoveFromParent)

	c.log.Debug("spawned stack", "blocks", count+2*oc.Overscan, "coin", coin, "drift", dy, "duration", c.duration)
}

func block(role Role, color core.Color, frame core.RectF) engine.NodeSpec {
	glyph := rune(obstacleGlyph)
	if role == RoleCoin {
		glyph = coinGlyph
	}
	return engine.NodeSpec{
		Name:  role.String(),
		Shape: engine.ShapeRect,
		Frame: frame,
		Color: color,
		Glyph: glyph,
		Body:  role.Body(),
	}
}
