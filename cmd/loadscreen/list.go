package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loadscreen/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available minigames",
	Long:  `Shows a list of all minigames registered in the loading screen.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'loadscreen play <id>' to play a game.")
}
