package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-stack/internal/storage"
)

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestScoreboardTabs(t *testing.T) {
	store := openTestStore(t)
	for _, rec := range []storage.ScoreRecord{
		{GameID: "stub", Difficulty: "easy", Score: 5, Player: "ann"},
		{GameID: "stub", Difficulty: "hard", Score: 8, Player: "bob"},
		{GameID: "stub", Score: 2},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.Difficulty() != "" || len(m.scores) != 3 {
		t.Fatalf("all tab: difficulty %q, %d scores", m.Difficulty(), len(m.scores))
	}
	if m.scores[0].Score != 8 {
		t.Errorf("first score = %d, expected 8", m.scores[0].Score)
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "easy" || len(m.scores) != 1 || m.scores[0].Player != "ann" {
		t.Errorf("easy tab: difficulty %q, scores %+v", m.Difficulty(), m.scores)
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != scoreTabs[len(scoreTabs)-1] {
		t.Errorf("left should wrap, got %q", m.Difficulty())
	}

	view := m.View()
	for _, part := range []string{"HIGH SCORES - Stub", "all", "fixed", "No scores recorded yet"} {
		if !strings.Contains(view, part) {
			t.Errorf("view missing %q:\n%s", part, view)
		}
	}
}

func TestScoreboardTable(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(storage.ScoreRecord{GameID: "stub", Score: 4}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	rows := m.table.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, expected 1", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "4" || rows[0][2] != "-" || rows[0][3] != "config" {
		t.Errorf("row = %q", rows[0])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if view := m.View(); !strings.Contains(view, "Scores are unavailable") {
		t.Errorf("view:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}

	m = NewScoreboardModel(nil, 100, 30)
	m = scoreboardUpdate(t, m, keyRunes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
