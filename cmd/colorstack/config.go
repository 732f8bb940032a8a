package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-stack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect Color Stack configuration",
	Long: `Print the effective configuration or validate a config file.

Config search order:
  1. --config path
  2. ~/.colorstack/configs/colorstack.yaml
  3. ./configs/colorstack.yaml
  4. built-in defaults`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a new game would use, after the
--difficulty preset is applied.

Examples:
  colorstack config print
  colorstack config print --difficulty hard > my-colorstack.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigPrint(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if path := config.Locate(flagConfig); path != "" {
		fmt.Fprintf(os.Stderr, "# from %s\n", path)
	} else {
		fmt.Fprintln(os.Stderr, "# built-in defaults")
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Printf("%s: ok (%d colors, stacks of %d-%d)\n",
		args[0], len(cfg.Palette), cfg.Obstacles.MinStack, cfg.Obstacles.MaxStack)
	return nil
}
