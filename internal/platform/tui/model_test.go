package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, opts Options) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{running: true}
	m := NewModel(g, store, testConfig(), opts)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.gen})
}

func TestModelInitResetsGame(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})
	if g.resets != 1 {
		t.Fatalf("resets = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store, Options{Player: "ann"})
	g.difficulty = "hard"

	g.state = core.GameState{Score: 5, GameOver: true}
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores("stub", "", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if s := scores[0]; s.Score != 5 || s.Player != "ann" || s.Difficulty != "hard" {
		t.Errorf("saved %+v", s)
	}
	if m.highScore != 5 || m.status != "new best!" {
		t.Errorf("highScore = %d status = %q", m.highScore, m.status)
	}

	// A new run that ends again is a new record.
	g.state = core.GameState{Score: 0}
	m = tick(t, m)
	g.state = core.GameState{Score: 3, GameOver: true}
	m = tick(t, m)

	scores, _ = store.TopScores("stub", "", 10)
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, expected 2", len(scores))
	}
	if m.highScore != 5 {
		t.Errorf("highScore = %d, expected 5", m.highScore)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	m, g := newTestModel(t, store, Options{})

	g.state = core.GameState{GameOver: true}
	tick(t, m)

	if best, _ := store.HighScore("stub", ""); best != 0 {
		t.Errorf("HighScore = %d, expected nothing saved", best)
	}
}

func TestModelLoadsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreRecord{GameID: "stub", Score: 12}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m, _ := newTestModel(t, store, Options{})
	if m.highScore != 12 {
		t.Errorf("highScore = %d, expected 12", m.highScore)
	}
	if view := m.View(); !strings.Contains(view, "best 12") {
		t.Errorf("status line missing best score:\n%s", view)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	m = update(t, m, keyRunes("r"))
	m = tick(t, m)
	if g.lastFrame(t).Has(core.ActionRestart) {
		t.Error("restart reached the game during a run")
	}

	g.state = core.GameState{GameOver: true}
	m = tick(t, m)
	m = update(t, m, keyRunes("r"))
	tick(t, m)
	if !g.lastFrame(t).Has(core.ActionRestart) {
		t.Error("restart did not reach the game after game over")
	}
}

func TestModelActionsClearedAfterTick(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	m = update(t, m, keyRunes(" "))
	m = tick(t, m)
	if !g.lastFrame(t).Has(core.ActionTap) {
		t.Fatal("tap did not reach the game")
	}
	tick(t, m)
	if g.lastFrame(t).Has(core.ActionTap) {
		t.Error("tap repeated on the next tick")
	}
}

func TestModelMouseTouches(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease})
	tick(t, m)

	expected := []core.Touch{
		{Phase: core.TouchDown, X: 3, Y: 4},
		{Phase: core.TouchMove, X: 5, Y: 6},
		{Phase: core.TouchUp, X: 5, Y: 6},
	}
	got := g.lastFrame(t).Touches
	if len(got) != len(expected) {
		t.Fatalf("touches = %+v, expected %+v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("touch %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game (resets = %d)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	_, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if len(g.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.frames))
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		running   bool
		state     core.GameState
		expected  bool
	}{
		{"idle", true, false, core.GameState{}, true},
		{"running", true, true, core.GameState{}, false},
		{"paused", true, true, core.GameState{Paused: true}, true},
		{"game over", true, true, core.GameState{GameOver: true}, true},
		{"not allowed", false, false, core.GameState{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, g := newTestModel(t, nil, Options{AllowBack: tc.allowBack})
			g.running = tc.running
			g.state = tc.state
			m = tick(t, m)

			m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.BackToMenu() != tc.expected {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tc.expected)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() {
		t.Error("ctrl+c did not quit")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})
	g.difficulty = "easy"
	g.state = core.GameState{Score: 7}
	m = tick(t, m)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("view has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[0], "stub") {
		t.Errorf("game row = %q", lines[0])
	}
	for _, part := range []string{"Stub", "score 7", "best 0", "easy"} {
		if !strings.Contains(lines[23], part) {
			t.Errorf("status line %q missing %q", lines[23], part)
		}
	}
}

func TestModelConfigReload(t *testing.T) {
	m, g := newTestModel(t, nil, Options{})

	m = update(t, m, configChangedMsg{path: "colorstack.yaml"})
	if g.reloads != 1 || m.status != "config reloaded" {
		t.Errorf("reloads = %d status = %q", g.reloads, m.status)
	}

	g.reloadErr = errors.New("bad yaml")
	m = update(t, m, configChangedMsg{path: "colorstack.yaml"})
	if g.reloads != 2 || !strings.HasPrefix(m.status, "config error") {
		t.Errorf("reloads = %d status = %q", g.reloads, m.status)
	}
}

func TestModelStatusExpires(t *testing.T) {
	m, _ := newTestModel(t, nil, Options{})
	m.setStatus("hello")

	for i := 0; i < statusTicks; i++ {
		m = tick(t, m)
	}
	if m.status != "" {
		t.Errorf("status = %q after %d ticks", m.status, statusTicks)
	}
}

func TestWaitForConfigNilWatcher(t *testing.T) {
	if waitForConfig(nil) != nil {
		t.Error("nil watcher should produce no command")
	}
}
