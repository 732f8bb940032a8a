// Package colorstack implements Color Stack: the player drags a ball up and
// down while walls of colored blocks scroll in from the right. Each wall
// has one block in the ball's color; passing through it scores, touching
// any other block ends the run.
package colorstack

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/engine"
	"github.com/vovakirdan/color-stack/internal/registry"
)

// ID is the registry identifier.
const ID = "colorstack"

var (
	defaultsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used by new games.
func SetConfigPath(path string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the preset used by new games. Unknown names
// fall back to the config's own difficulty section.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	difficultyPreset = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	logger = l
}

// Game adapts a Controller and its World to the platform game contract.
type Game struct {
	configPath string
	preset     config.DifficultyPreset
	log        *log.Logger

	cfg     config.ColorStackConfig
	pending *config.ColorStackConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *engine.World
	ctrl    *Controller
	paused  bool
	tick    uint64

	// Size of the last rendered screen, used to map cell touches.
	cols, rows int
}

// New creates a game using the package defaults.
func New() *Game {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return &Game{
		configPath: configPath,
		preset:     difficultyPreset,
		log:        logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Stack"
}

// SetDifficulty selects a preset for this instance. It takes effect on the
// next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// Difficulty returns the preset name, or "" when none is applied.
func (g *Game) Difficulty() string {
	return string(g.preset)
}

// Reset loads the configuration and builds a fresh scene in the Idle state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	cfg, err := g.loadConfig()
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultColorStackConfig()
		config.ApplyPreset(&cfg, g.preset)
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.build(cfg)
	if g.cols == 0 || g.rows == 0 {
		g.cols, g.rows = rc.ScreenW, rc.ScreenH
	}
}

func (g *Game) loadConfig() (config.ColorStackConfig, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, g.preset)
	return cfg, cfg.Validate()
}

func (g *Game) build(cfg config.ColorStackConfig) {
	g.cfg = cfg
	g.pending = nil
	g.paused = false
	g.tick = 0
	g.world = engine.NewWorld(cfg.Field.Size())
	g.ctrl = NewController(g.world, cfg, g.rng, g.log)
	g.ctrl.OnAttach()
}

// ReloadConfig re-reads the configuration. The new values are applied the
// next time no run is in progress.
func (g *Game) ReloadConfig() error {
	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("colorstack: reload: %w", err)
	}
	g.pending = &cfg
	g.log.Info("config reloaded", "path", config.Locate(g.configPath))
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	phase := g.ctrl.State().Phase

	if in.Has(core.ActionPause) && phase == PhaseInProgress {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	size := g.world.Size()
	for _, t := range in.Touches {
		g.Touch(t.Phase, engine.CellToWorld(size, g.cols, g.rows, t.X, t.Y))
	}

	switch {
	case in.Has(core.ActionTap), in.Has(core.ActionConfirm):
		g.tap()
	case in.Has(core.ActionRestart) && phase == PhaseDied:
		g.tap()
	}

	if g.ctrl.State().Phase == PhaseInProgress {
		step := size.H / float64(max(g.rows, 1))
		if in.Has(core.ActionUp) {
			g.nudge(step)
		}
		if in.Has(core.ActionDown) {
			g.nudge(-step)
		}
	}

	if g.pending != nil && g.ctrl.State().Phase == PhaseIdle {
		g.build(*g.pending)
	}

	dt := g.runtime.TickSeconds()
	g.tick++
	g.ctrl.OnTick(dt)
	g.world.Update(dt)

	return core.StepResult{State: g.State()}
}

// Touch forwards a pointer event in world coordinates.
func (g *Game) Touch(phase core.TouchPhase, p core.Vec) {
	switch phase {
	case core.TouchDown:
		g.ctrl.OnTouchDown(p)
	case core.TouchMove:
		g.ctrl.OnTouchMove(p)
	case core.TouchUp:
		g.ctrl.OnTouchUp()
	}
}

// tap feeds a keyboard start or restart through the touch path.
func (g *Game) tap() {
	if g.ctrl.State().Phase == PhaseInProgress {
		return
	}
	held := g.ctrl.touching
	g.ctrl.OnTouchDown(g.ctrl.Ball().Position())
	if !held {
		g.ctrl.OnTouchUp()
	}
}

// nudge moves the ball by dy without touching the pointer state, so a drag
// in progress keeps its reference.
func (g *Game) nudge(dy float64) {
	g.ctrl.moveBall(dy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.cols, g.rows = dst.Width(), dst.Height()
	dst.Clear()
	g.world.Render(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.ctrl.State().Phase == PhaseDied:
		hint := "Tap or press R to continue"
		dst.DrawTextColored((dst.Width()-len(hint))/2, dst.Height()-1, hint, core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.State().Phase == PhaseDied,
		Paused:   g.paused,
	}
}

// Phase returns the controller phase.
func (g *Game) Phase() Phase {
	return g.ctrl.State().Phase
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool {
	return g.ctrl.State().Phase == PhaseInProgress
}

// World exposes the scene for hosts that draw it themselves.
func (g *Game) World() *engine.World {
	return g.world
}

// Config returns the configuration in use.
func (g *Game) Config() config.ColorStackConfig {
	return g.cfg
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
