package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/registry"
	"github.com/vovakirdan/color-stack/internal/storage"
)

// statusTicks is how long a transient status message stays up.
const statusTicks = 180

// Options tune a game Model beyond the runtime config.
type Options struct {
	// Player is stored with saved scores.
	Player string

	// Watcher feeds config file changes to games that support reloading.
	Watcher *config.Watcher

	// Logger receives save errors and reload events. Nil discards.
	Logger *log.Logger

	// AllowBack lets b/esc leave the game when it is not running.
	AllowBack bool
}

// runner is implemented by games that distinguish an idle screen from a run.
type runner interface {
	Running() bool
}

type configChangedMsg struct{ path string }

type configErrorMsg struct{ err error }

// waitForConfig blocks on the watcher until the next change or error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// Model is the Bubble Tea model for running a game. The bottom terminal
// row is a status bar; the game gets the rest.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	gen        uint64
	log        *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	status     string
	statusTTL  int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		gen:        nextTickGen(),
		log:        logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		if high, err := store.HighScore(game.ID(), difficultyOf(game)); err == nil {
			m.highScore = high
		}
	}
	return m
}

func playRows(height int) int {
	return core.Max(height-1, 1)
}

func difficultyOf(game registry.Game) string {
	if t, ok := game.(registry.Tunable); ok {
		return t.Difficulty()
	}
	return ""
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.gen)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForConfig(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case configChangedMsg:
		return m.handleConfigChange(msg)

	case configErrorMsg:
		m.log.Warn("config watcher", "err", msg.err)
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.AllowBack && !m.running() {
			m.backToMenu = true
		}
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// running reports whether a run is in progress and not paused.
func (m Model) running() bool {
	if m.gameState.GameOver || m.gameState.Paused {
		return false
	}
	if r, ok := m.game.(runner); ok {
		return r.Running()
	}
	return true
}

// handleResize processes window resize events. The game keeps its state;
// only the screen buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScore records a finished run once. Zero scores are not kept.
func (m *Model) saveScore() {
	score := m.gameState.Score
	if score <= 0 || m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Difficulty: difficultyOf(m.game),
		Score:      score,
	})
	if err != nil {
		m.log.Warn("could not save score", "err", err)
		return
	}
	if score > m.highScore {
		m.highScore = score
		m.setStatus("new best!")
	}
}

func (m Model) handleConfigChange(msg configChangedMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(registry.Reloadable); ok {
		if err := r.ReloadConfig(); err != nil {
			m.log.Warn("config reload failed", "path", msg.path, "err", err)
			m.setStatus("config error, keeping current settings")
		} else {
			m.setStatus("config reloaded")
		}
	}
	return m, waitForConfig(m.opts.Watcher)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusTTL = statusTicks
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".colorstack", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.setStatus("screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderStatus(m.statusLine(), m.screen.Width())
}

func (m Model) statusLine() string {
	line := fmt.Sprintf(" %s │ score %d │ best %d", m.game.Title(), m.gameState.Score, m.highScore)
	if d := difficultyOf(m.game); d != "" {
		line += " │ " + d
	}
	if m.status != "" {
		line += " │ " + m.status
	}
	return line
}

// Score returns the score from the last tick.
func (m Model) Score() int {
	return m.gameState.Score
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model and returns the
// final score.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (int, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Score(), nil
	}
	return 0, nil
}
