package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in an 800x620 desktop window.

Controls:
  Arrows/WASD  - Steer
  Enter        - Play again (after game over)
  Esc          - Quit

Examples:
  snake window
  snake window --fps 120 --db ~/.snake/scores.db`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	opts := window.Options{
		Player: playerName(),
		FPS:    flagFPS,
		Seed:   flagSeed,
	}
	store := openStore()
	if store != nil {
		opts.Store = store
	}

	runErr := window.Run(cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
