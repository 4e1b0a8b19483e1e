// snake is a terminal and desktop snake game.
//
// Usage:
//
//	snake                 - Play in the terminal (same as "snake play")
//	snake play            - Play in the terminal
//	snake window          - Play in a desktop window
//	snake serve           - Start SSH server for remote play
//	snake scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60, terminal max 240)
//	--seed <value>   - Set RNG seed for reproducible food placement
//	--db <path>      - Record scores in a SQLite database (default: off)
//	--config <path>  - Use a custom YAML config
//	--debug          - Show the game state in terminal frontends
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

// logger reports warnings before a frontend takes over the terminal.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't bite yourself",
	Long: `Snake is the classic arcade game: steer the snake to the food, grow longer
with every bite and survive as long as you can. Hitting a wall or your own
body ends the game. The snake speeds up as it eats.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake
  snake window --seed 42
  snake play --db ~/.snake/scores.db
  snake serve --ssh :2222 --db ./scores.db
  snake scores --db ./scores.db`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = no score log)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the game state under the terminal play-field")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the score log named by --db. It returns nil when the flag
// is empty or the database cannot be opened; the game runs without it.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
