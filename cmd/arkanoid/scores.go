package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcade-tui/arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top recorded scores with the grid size and mode they
were achieved on.

Examples:
  arkanoid scores
  arkanoid scores --limit 25
  arkanoid scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Arkanoid")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Fprintln(os.Stdout, "Play 'arkanoid' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %s\n", "Rank", "Score", "Grid", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		mode := "normal"
		if entry.Hardcore {
			mode = "hardcore"
		}
		grid := fmt.Sprintf("%dx%d", entry.GridCols, entry.GridRows)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7s  %-8s  %s\n", i+1, entry.Score, grid, mode, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Games: %d   Best: %d   Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore)

	return nil
}
