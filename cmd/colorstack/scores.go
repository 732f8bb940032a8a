package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/games/colorstack"
	"github.com/vovakirdan/color-stack/internal/registry"
	"github.com/vovakirdan/color-stack/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores. The game defaults to colorstack.

The global --difficulty flag filters by preset; without it every run is
listed.

Examples:
  colorstack scores
  colorstack scores --difficulty hard
  colorstack scores --limit 25
  colorstack scores --recent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
}

func runScores(_ *cobra.Command, args []string) error {
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
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
		scores, err = store.RecentScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagDifficulty, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - %s", heading, game.Title())
	if flagDifficulty != "" && !flagScoresRecent {
		fmt.Printf(" (%s)", flagDifficulty)
	}
	fmt.Println()
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'colorstack play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-8s  %s\n", "Rank", "Score", "Player", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-8s  %s\n", "----", "-----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-16s  %-8s  %s\n",
			i+1, entry.Score, orDash(entry.Player), levelName(entry.Difficulty),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Players: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Players)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func levelName(d string) string {
	if d == "" {
		return "config"
	}
	if _, err := config.ParsePreset(d); err != nil {
		return "?"
	}
	return d
}
