package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round",
	Long: `Start a round right away. The program exits after the game over screen.

Controls:
  Left/A, Right/D  - Steer (hold)
  Mouse            - Steer to the pointer
  P                - Pause
  Esc              - Abandon the round
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - All lives, slower first spawns
  normal - Configured values
  hard   - One life less, faster spawns, faster traffic
  fixed  - Spawn interval never shrinks

Examples:
  roadrush play
  roadrush play --difficulty easy
  roadrush play --seed 42 --log-file roadrush.log
  roadrush play --config ./my-roadrush.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session events to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(cfg, terminalRuntime(), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
