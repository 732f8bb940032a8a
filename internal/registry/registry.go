// Package registry maps game ids to constructors. The colorstack package
// registers itself from init, and the CLI, SSH and GUI front ends create
// sessions through Create so a fresh game backs every player.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/color-stack/internal/core"
)

// Game is what a front end drives. Implementations stay free of terminal
// and window code: the host feeds an InputFrame per tick and blits the
// Screen they render into.
type Game interface {
	// ID is the registry key and the score table key, e.g. "colorstack".
	ID() string

	// Title is shown in menus and headers.
	Title() string

	// Reset sizes the game to the host's screen and reseeds it.
	Reset(cfg core.RuntimeConfig)

	// Step runs one fixed tick with the actions and pointer samples
	// collected since the previous one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which has already been cleared and sized.
	Render(dst *core.Screen)

	// State reports score, pause and game over for the host.
	State() core.GameState
}

// Tunable is implemented by games that support difficulty presets.
type Tunable interface {
	SetDifficulty(preset string) error
	Difficulty() string
}

// Reloadable is implemented by games that can re-read their config file
// while running.
type Reloadable interface {
	ReloadConfig() error
}

// GameInfo is one row of List.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds an unstarted game. Each session calls it once.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register binds id to f and caches the title of one throwaway instance.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	titles[id] = f().Title()
}

// List returns the registered games ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id has a factory.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
