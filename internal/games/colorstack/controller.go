package colorstack

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/engine"
)

// Controller holds the game rules. The host calls its On* methods from a
// single goroutine; the controller drives the scene through engine.Scene.
type Controller struct {
	scene engine.Scene
	cfg   config.ColorStackConfig
	rng   *rand.Rand
	log   *log.Logger
	diff  *config.DifficultyManager

	ball      engine.Node
	ballColor core.Color
	state     State
	touching  bool
	score     int
	spawn     engine.Timer

	duration float64 // current wall crossing time
	ticks    int     // ticks spent in progress this run
}

// NewController creates a controller for scene. It panics if the palette
// has no color besides the ball color; callers load configs through
// config.Validate, which reports the same problem as an error.
func NewController(scene engine.Scene, cfg config.ColorStackConfig, rng *rand.Rand, logger *log.Logger) *Controller {
	if len(cfg.Palette) < 2 {
		panic(fmt.Sprintf("colorstack: palette needs at least 2 colors, got %d", len(cfg.Palette)))
	}
	other := false
	for _, col := range cfg.Palette {
		if col != cfg.Ball.Color {
			other = true
			break
		}
	}
	if !other {
		panic(fmt.Sprintf("colorstack: palette has no color other than %s", cfg.Ball.Color))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		scene:     scene,
		cfg:       cfg,
		rng:       rng,
		log:       logger,
		diff:      config.NewDifficultyManager(cfg.Difficulty),
		ballColor: cfg.Ball.Color,
		state:     idleState(),
		duration:  cfg.Obstacles.TranslateDuration,
	}
}

// OnAttach sets up the label and the ball and subscribes to contacts.
func (c *Controller) OnAttach() {
	size := c.scene.Size()
	c.scene.SetLabelPosition(core.V(size.W/2, size.H-c.cfg.HUD.LabelOffset))
	c.scene.SetLabel(c.cfg.HUD.Prompt)

	c.ball = c.scene.AddChild(engine.NodeSpec{
		Name:     RoleBall.String(),
		Shape:    engine.ShapeCircle,
		Radius:   c.cfg.Ball.Radius,
		Position: c.startPosition(),
		Color:    c.ballColor,
		Z:        1,
		Body:     RoleBall.Body(),
	})
	c.scene.SetContactFunc(c.OnCollision)
}

// OnTouchDown starts a run from Idle, resets from Died and otherwise
// records the drag reference.
func (c *Controller) OnTouchDown(p core.Vec) {
	c.touching = true
	switch c.state.Phase {
	case PhaseIdle:
		c.start()
	case PhaseDied:
		c.restart()
	case PhaseInProgress:
		c.state = c.state.withTouch(p.Y)
	}
}

// OnTouchMove drags the ball by the vertical distance since the previous
// sample. The first sample of a touch only sets the reference.
func (c *Controller) OnTouchMove(p core.Vec) {
	if c.state.Phase != PhaseInProgress {
		return
	}
	if !c.state.HasTouch {
		if c.touching {
			c.state = c.state.withTouch(p.Y)
		}
		return
	}
	c.moveBall(p.Y - c.state.LastTouchY)
	c.state = c.state.withTouch(p.Y)
}

// OnTouchUp clears the drag reference.
func (c *Controller) OnTouchUp() {
	c.touching = false
	if c.state.HasTouch {
		c.state = c.state.withoutTouch()
	}
}

// OnTick runs once per host frame. With difficulty progression enabled it
// shortens the crossing time of walls spawned from now on.
func (c *Controller) OnTick(dt float64) {
	if c.state.Phase != PhaseInProgress {
		return
	}
	c.ticks++
	if c.diff.IsEnabled() {
		c.duration = c.diff.Duration(c.cfg.Obstacles.TranslateDuration, c.score, c.ticks)
	}
}

// OnCollision resolves a contact. Argument order does not matter.
func (c *Controller) OnCollision(a, b engine.Node) {
	if c.state.Phase != PhaseInProgress {
		return
	}
	ra, rb := RoleOf(a), RoleOf(b)
	if rb == RoleBall {
		a, b = b, a
		ra, rb = rb, ra
	}
	if ra != RoleBall {
		return
	}

	switch rb {
	case RoleCoin:
		b.RemoveFromParent()
		c.setScore(c.score + 1)
	case RoleObstacle:
		c.finish()
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// Ball returns the ball node, nil before OnAttach.
func (c *Controller) Ball() engine.Node { return c.ball }

// Duration returns the crossing time used for the next wall.
func (c *Controller) Duration() float64 { return c.duration }

func (c *Controller) start() {
	c.setScore(0)
	c.removeStacks()
	c.ball.SetPosition(c.startPosition())
	c.state = inProgressState()
	c.ticks = 0
	c.duration = c.diff.Duration(c.cfg.Obstacles.TranslateDuration, 0, 0)
	c.spawn = c.scene.Schedule(c.cfg.Spawn.Interval, true, c.spawnStack)
	c.log.Info("game started", "interval", c.cfg.Spawn.Interval, "duration", c.duration)
}

func (c *Controller) finish() {
	if c.state.Phase == PhaseDied {
		return
	}
	if c.spawn != nil {
		c.spawn.Invalidate()
	}
	c.state = diedState()
	for _, stack := range c.scene.ChildrenNamed(StackName) {
		stack.RemoveAllActions()
		stack.SetSpeed(0)
	}
	c.log.Info("game over", "score", c.score, "ticks", c.ticks)
}

func (c *Controller) restart() {
	c.state = idleState()
	c.score = 0
	c.scene.SetLabel(c.cfg.HUD.Prompt)
	c.removeStacks()
	c.ball.SetPosition(c.startPosition())
	c.log.Debug("restart")
}

func (c *Controller) setScore(n int) {
	c.score = n
	c.scene.SetLabel(strconv.Itoa(n))
}

func (c *Controller) removeStacks() {
	for _, stack := range c.scene.ChildrenNamed(StackName) {
		stack.RemoveFromParent()
	}
}

func (c *Controller) startPosition() core.Vec {
	size := c.scene.Size()
	return core.V(size.W*c.cfg.Ball.StartX, size.H/2)
}

// moveBall shifts the ball vertically, keeping it inside the field.
func (c *Controller) moveBall(dy float64) {
	size := c.scene.Size()
	r := c.cfg.Ball.Radius
	p := c.ball.Position()
	p.Y = core.ClampF(p.Y+dy, r, size.H-r)
	c.ball.SetPosition(p)
}
