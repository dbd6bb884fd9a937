package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying --config and
--difficulty. Use the output as a starting point for a custom config.

Config search order:
  1. --config path
  2. ~/.roadrush/configs/roadrush.yaml
  3. ./configs/roadrush.yaml
  4. Built-in defaults

Examples:
  roadrush config
  roadrush config --defaults > roadrush.yaml
  roadrush config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(out)
}
