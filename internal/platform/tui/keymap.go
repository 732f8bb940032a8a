package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-stack/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// It tracks whether the left button is held so drags become touch moves.
type KeyMapper struct {
	pressed bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ":
		return core.ActionTap, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a touch. Only the left button
// starts a touch; motion counts while it is held. The second result is
// false for events that are not part of a touch.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Touch, bool) {
	t := core.Touch{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return t, false
		}
		km.pressed = true
		t.Phase = core.TouchDown
	case tea.MouseActionMotion:
		if !km.pressed {
			return t, false
		}
		t.Phase = core.TouchMove
	case tea.MouseActionRelease:
		if !km.pressed {
			return t, false
		}
		km.pressed = false
		t.Phase = core.TouchUp
	default:
		return t, false
	}
	return t, true
}

// MapMouseToFrame adds the touch for a mouse message, if any, to frame.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if t, ok := km.MapMouse(msg); ok {
		frame.AddTouch(t)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
