package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rockets/internal/registry"
	"github.com/vovakirdan/tui-rockets/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with its ID.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := loadStats()

	fmt.Printf("  %-*s  %-16s  %5s  %4s\n", maxIDLen, "ID", "Title", "Games", "Best")
	fmt.Printf("  %-*s  %-16s  %5s  %4s\n", maxIDLen, "--", "-----", "-----", "----")
	for _, g := range games {
		var played, best int
		if st, ok := stats[g.ID]; ok {
			played, best = st.GamesCount, st.HighScore
		}
		fmt.Printf("  %-*s  %-16s  %5d  %4d\n", maxIDLen, g.ID, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'rockets play <id>' to play a mode.")
}

// loadStats reads per-mode stats; a missing database just means no history.
func loadStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("could not read game stats", "err", err)
		return nil
	}
	return stats
}
