//go:build gui

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-stack/internal/core"
	"github.com/vovakirdan/color-stack/internal/games/colorstack"
	"github.com/vovakirdan/color-stack/internal/platform/gui"
	"github.com/vovakirdan/color-stack/internal/storage"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the playing field.

Controls:
  Click/Touch/Space - Start, and continue after a crash
  Drag              - Move the ball
  P                 - Pause
  R                 - Restart (after game over)
  Q/Esc             - Quit`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	score, err := gui.Run(colorstack.New(), store, cfg, gui.Options{
		Player: os.Getenv("USER"),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	fmt.Printf("Final score: %d\n", score)
	return nil
}
