//go:build gui

// Package gui runs Color Stack in a desktop window. The window is the
// field: one pixel per world unit, with world y flipped so it grows up.
// Mouse and touch screens both drive the ball.
package gui

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/engine"
	"github.com/vovakirdan/color-stack/internal/games/colorstack"
	"github.com/vovakirdan/color-stack/internal/storage"
)

// Options tune the desktop host.
type Options struct {
	Player string
	Logger *log.Logger
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:           {R: 231, G: 76, B: 60, A: 255},
	core.ColorGreen:         {R: 46, G: 204, B: 113, A: 255},
	core.ColorYellow:        {R: 241, G: 196, B: 15, A: 255},
	core.ColorBlue:          {R: 52, G: 152, B: 219, A: 255},
	core.ColorMagenta:       {R: 217, G: 70, B: 239, A: 255},
	core.ColorCyan:          {R: 26, G: 188, B: 156, A: 255},
	core.ColorWhite:         {R: 236, G: 240, B: 241, A: 255},
	core.ColorBrightRed:     {R: 255, G: 99, B: 72, A: 255},
	core.ColorBrightGreen:   {R: 123, G: 237, B: 159, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 234, B: 167, A: 255},
	core.ColorBrightBlue:    {R: 116, G: 185, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 253, G: 121, B: 168, A: 255},
	core.ColorBrightCyan:    {R: 129, G: 236, B: 236, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 230, G: 126, B: 34, A: 255},
	core.ColorGray:          {R: 127, G: 140, B: 141, A: 255},
	core.ColorPurple:        {R: 142, G: 68, B: 173, A: 255},
}

var background = color.RGBA{R: 18, G: 18, B: 24, A: 255}

// rgba returns the window color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// toWorld converts a window pixel to world coordinates.
func toWorld(size core.Size, x, y int) core.Vec {
	return core.V(float64(x), size.H-float64(y))
}

// toScreenY converts a world y to a window row.
func toScreenY(size core.Size, y float64) float32 {
	return float32(size.H - y)
}

// host implements ebiten.Game around a colorstack.Game.
type host struct {
	game  *colorstack.Game
	store *storage.Store
	opts  Options
	log   *log.Logger

	frame core.InputFrame
	state core.GameState
	saved bool

	mouseDown bool
	touchID   ebiten.TouchID
	touching  bool
	touchIDs  []ebiten.TouchID
}

// Run opens a window sized to the field and plays until it is closed.
// Returns the score of the last run.
func Run(game *colorstack.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	size := game.World().Size()

	h := &host{
		game:  game,
		store: store,
		opts:  opts,
		log:   logger,
		frame: core.NewInputFrame(),
	}

	ebiten.SetWindowSize(int(size.W), int(size.H))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return h.state.Score, err
	}
	return h.state.Score, nil
}

// Update reads input and advances the game one tick.
func (h *host) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		h.frame.Set(core.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		h.frame.Set(core.ActionRestart)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		h.frame.Set(core.ActionTap)
	}

	if !h.state.Paused {
		h.pointer()
	}

	h.state = h.game.Step(h.frame).State
	h.frame.Clear()

	if !h.state.GameOver {
		h.saved = false
	} else if !h.saved {
		h.saveScore()
		h.saved = true
	}
	return nil
}

// pointer forwards mouse and touch input. One touch is tracked at a time;
// the mouse is ignored while a finger is down.
func (h *host) pointer() {
	size := h.game.World().Size()

	h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
	if !h.touching && !h.mouseDown && len(h.touchIDs) > 0 {
		h.touchID = h.touchIDs[0]
		h.touching = true
		x, y := ebiten.TouchPosition(h.touchID)
		h.game.Touch(core.TouchDown, toWorld(size, x, y))
		return
	}
	if h.touching {
		if inpututil.IsTouchJustReleased(h.touchID) {
			h.touching = false
			h.game.Touch(core.TouchUp, core.Vec{})
			return
		}
		x, y := ebiten.TouchPosition(h.touchID)
		h.game.Touch(core.TouchMove, toWorld(size, x, y))
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.mouseDown = true
		h.game.Touch(core.TouchDown, toWorld(size, x, y))
	case h.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		h.mouseDown = false
		h.game.Touch(core.TouchUp, toWorld(size, x, y))
	case h.mouseDown:
		h.game.Touch(core.TouchMove, toWorld(size, x, y))
	}
}

func (h *host) saveScore() {
	if h.state.Score <= 0 || h.store == nil {
		return
	}
	_, err := h.store.SaveScore(storage.ScoreRecord{
		GameID:     h.game.ID(),
		Player:     h.opts.Player,
		Difficulty: h.game.Difficulty(),
		Score:      h.state.Score,
	})
	if err != nil {
		h.log.Warn("could not save score", "err", err)
	}
}

// Draw paints the world, then the label and any overlay text.
func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w := h.game.World()
	size := w.Size()

	w.Each(func(d engine.Drawable) {
		c := rgba(d.Color)
		switch d.Shape {
		case engine.ShapeRect:
			vector.DrawFilledRect(screen,
				float32(d.Frame.X), toScreenY(size, d.Frame.MaxY()),
				float32(d.Frame.W), float32(d.Frame.H), c, true)
		case engine.ShapeCircle:
			vector.DrawFilledCircle(screen,
				float32(d.Center.X), toScreenY(size, d.Center.Y),
				float32(d.Radius), c, true)
		}
	})

	// DebugPrint glyphs are 6x16 pixels.
	if label := w.Label(); label != "" {
		p := w.LabelPosition()
		ebitenutil.DebugPrintAt(screen, label, int(p.X)-len(label)*3, int(toScreenY(size, p.Y))-8)
	}
	switch {
	case h.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", 8, 8)
	case h.state.GameOver:
		ebitenutil.DebugPrintAt(screen, "Tap or press R to continue", 8, int(size.H)-24)
	}
}

// Layout keeps the logical screen at the field size.
func (h *host) Layout(_, _ int) (int, int) {
	size := h.game.World().Size()
	return int(size.W), int(size.H)
}
