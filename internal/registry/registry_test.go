package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/color-stack/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists mismatch")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List order = %v", ids)
	}

	g, err := Create("stub-a")
	if err != nil || g.ID() != "stub-a" {
		t.Errorf("Create = %v, %v", g, err)
	}
	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub-fresh", func() Game { return &stubGame{id: "stub-fresh"} })

	a, err := Create("stub-fresh")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := Create("stub-fresh")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a == b {
		t.Error("sessions share one game instance")
	}
}
