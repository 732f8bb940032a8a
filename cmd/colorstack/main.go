// colorstack is a terminal arcade game: drag a ball through scrolling walls
// of colored blocks, passing only through the block that matches its color.
//
// Usage:
//
//	colorstack play              - Play in this terminal
//	colorstack menu              - Main menu with difficulty choice and scores
//	colorstack serve             - Start SSH server for remote play
//	colorstack scores            - Show high scores
//	colorstack list              - List available games
//	colorstack config print      - Show the effective configuration
//	colorstack config check FILE - Validate a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.colorstack/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write the log to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-stack/internal/config"
	"github.com/vovakirdan/color-stack/internal/games/colorstack"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is set up before every command runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorstack",
	Short: "Color Stack - pass through the block that matches your ball",
	Long: `Color Stack is a terminal arcade game. Walls of colored blocks scroll
in from the right; drag the ball up and down so it passes through the one
block that matches its color. Any other block ends the run.

Available commands:
  play     - Play directly
  menu     - Main menu with difficulty choice and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games
  config   - Print or check configuration

Examples:
  colorstack play
  colorstack play --difficulty hard
  colorstack menu
  colorstack serve --ssh :2222
  colorstack scores --difficulty easy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorstack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags, opens the log and hands the settings
// to the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	// Interactive commands own the terminal, so the log only goes to a file.
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorstack",
		Level:           level,
	})

	colorstack.SetConfigPath(flagConfig)
	colorstack.SetDifficultyPreset(flagDifficulty)
	colorstack.SetLogger(logger)
	return nil
}
