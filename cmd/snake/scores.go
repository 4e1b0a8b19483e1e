package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show or clear high scores",
	Long: `Display the top scores recorded in the database given by --db.
With --clear, delete them instead.

Examples:
  snake scores --db ~/.snake/scores.db
  snake scores --db ./scores.db --limit 20
  snake scores --db ./scores.db --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no scores database; pass --db <path>")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(snake.ID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(snake.ID, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// The summary line is optional; the table still prints without it.
	stats, err := store.GetGameStats(snake.ID)
	if err != nil {
		logger.Warn("could not load game stats", "error", err)
	}

	fmt.Print(tui.RenderScores(scores, stats))
}
