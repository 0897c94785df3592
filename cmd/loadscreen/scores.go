package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/games/getaway"
	"github.com/vovakirdan/loadscreen/internal/platform/tui"
	"github.com/vovakirdan/loadscreen/internal/registry"
	"github.com/vovakirdan/loadscreen/internal/storage"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresClear       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the score history of a minigame",
	Long: `Display the top scores for a minigame, or its most recent runs.

Examples:
  loadscreen scores
  loadscreen scores --recent --limit 20
  loadscreen scores -i
  loadscreen scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the scores in a table")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := getaway.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	title, ok := gameTitle(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'loadscreen list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared the score history of %s.\n", title)
		return

	case flagScoresInteractive:
		width, height := terminalSize()
		current := theme.NewManager(store.Preferences(), nil, nil).Load()
		if err := tui.RunScoreboard(store, gameID, title, current, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	printScores(store, gameID, title)
}

func gameTitle(gameID string) (string, bool) {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title, true
		}
	}
	return "", false
}

func printScores(store *storage.Store, gameID, title string) {
	fetch, heading := store.TopScores, "High Scores"
	if flagScoresRecent {
		fetch, heading = store.RecentScores, "Recent Runs"
	}

	scores, err := fetch(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'loadscreen play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Record", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		mark := ""
		if entry.Record {
			mark = "*"
		}
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, mark, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Records: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.Records, stats.AvgScore)
	}
}
