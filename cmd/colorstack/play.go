package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/games/colorstack"
	"github.com/vovakirdan/color-stack/internal/platform/tui"
	"github.com/vovakirdan/color-stack/internal/registry"
	"github.com/vovakirdan/color-stack/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to colorstack.

Controls:
  Click/Space/Enter - Start, and continue after a crash
  Drag              - Move the ball
  Up/Down (w/s)     - Nudge the ball one row
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow walls, speeds up over the run
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty with taller walls
  fixed  - No progression, stays at config's initial level

Examples:
  colorstack play
  colorstack play --difficulty hard
  colorstack play --config ./my-colorstack.yaml --watch
  colorstack play --seed 42 --log-file play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := colorstack.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'colorstack list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.Options{
		Player: os.Getenv("USER"),
		Logger: logger,
	}
	if flagWatch {
		w, err := config.NewWatcher(config.Locate(flagConfig))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: not watching config: %v\n", err)
		} else {
			defer w.Close()
			opts.Watcher = w
			logger.Info("watching config", "path", w.Path())
		}
	}

	score, err := tui.Run(game, store, terminalConfig(), opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	fmt.Printf("Final score: %d\n", score)
	return nil
}

// terminalConfig builds the runtime config from the flags and the current
// terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
