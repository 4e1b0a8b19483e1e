package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

The default play-field needs an 80x63 terminal. Use --config to play on a
smaller grid.

Controls:
  Arrows/WASD  - Steer
  Enter        - Play again (after game over)
  Q/Esc/Ctrl+C - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./small.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	opts := tui.Options{Player: playerName(), Debug: flagDebug}
	store := openStore()
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(cfg, rt, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
