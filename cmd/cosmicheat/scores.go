package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/registry"
	"github.com/vovakirdan/cosmic-heat/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores for a difficulty.

Examples:
  cosmicheat scores
  cosmicheat scores hard
  cosmicheat scores easy --limit 25
  cosmicheat scores fixed --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored score of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	p, err := preset(args)
	if err != nil {
		return err
	}
	modeID := cosmic.ModeID(p)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", registry.Title(modeID))
		return nil
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(modeID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cosmicheat play %s' to set the first high score!\n", p)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(modeID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Rounds: %d  Average: %.0f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	return nil
}
