package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-stack/internal/platform/tui"
	"github.com/vovakirdan/color-stack/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, and come back to the menu after a run.
The scoreboard is one key away.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  B/Esc        - Back to menu (when no run is in progress)
  Q            - Quit

Examples:
  colorstack menu
  colorstack menu --difficulty hard
  colorstack menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	return tui.RunSession(store, terminalConfig(), tui.SessionOptions{
		Player:     os.Getenv("USER"),
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
}
