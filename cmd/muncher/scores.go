package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/platform/tui"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
	"github.com/vovakirdan/pixel-muncher/internal/storage"
)

var (
	flagScoresAll    bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [maze]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a maze (classic if omitted),
a summary of every played maze with --all, or browse every maze
interactively with --browse.

Examples:
  muncher scores
  muncher scores tunnels
  muncher scores --all
  muncher scores --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every played maze")
	scoresCmd.Flags().BoolVarP(&flagScoresBrowse, "browse", "b", false, "Browse scores in a full-screen table")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagScoresBrowse {
		cfg := runtimeConfig(store)
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}
	if flagScoresAll {
		return printAllStats(store)
	}

	gameID := defaultMaze
	if len(args) > 0 {
		gameID = args[0]
	}
	return printTopScores(store, gameID)
}

func printTopScores(store *storage.Store, gameID string) error {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'muncher play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printAllStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %6s  %8s  %8s  %s\n", "Maze", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %6s  %8s  %8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %6d  %8d  %8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
