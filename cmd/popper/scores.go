package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popper/internal/config"
	"github.com/vovakirdan/tui-popper/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for a single difficulty.

Examples:
  popper scores
  popper scores --difficulty hard
  popper scores --limit 25
  popper scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := flagDifficulty
	if difficulty != "" {
		if _, err := config.ParsePreset(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("All scores cleared.")
		return
	}

	scores, err := store.TopScores(difficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'popper play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Popped", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "------", "-----", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-6s  %-6d  %-8s  %s\n",
			i+1, entry.Score, result, entry.Spheres, entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(difficulty)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Avg: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}
