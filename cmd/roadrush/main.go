// roadrush is a car-dodging arcade game for the terminal.
//
// Usage:
//
//	roadrush play            - Play one round
//	roadrush menu            - Start menu, play rounds until you quit
//	roadrush serve           - Start SSH server for remote play
//	roadrush config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible spawns
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is a vertically scrolling driving game. Steer your car
left and right, avoid the obstacles and pick up the green cars for an
extra life. Every green car you miss makes traffic denser.

Available commands:
  play     - Play one round
  menu     - Interactive start menu
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush menu --fps 30
  roadrush serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from --config and --difficulty.
func loadGameConfig() (config.RoadRushConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RoadRushConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RoadRushConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.RoadRushConfig{}, err
	}
	return cfg, nil
}

// terminalRuntime builds the runtime config from the current terminal size.
func terminalRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// newFileLogger opens path for the session log. An empty path disables
// logging, since stderr belongs to the game screen.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
