package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var (
	flagScript string
	flagLimit  int
	flagClear  bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show recorded match results",
	Long: `Display recently recorded matches, newest first.

With --script the list is filtered to that script and a per-player win
tally is shown. --clear deletes the recorded matches of that script.

Examples:
  ladders matches
  ladders matches --limit 50
  ladders matches --script game.txt
  ladders matches --script game.txt --clear`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&flagScript, "script", "", "Only show matches of this script")
	matchesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum matches to show")
	matchesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded matches (requires --script)")
}

func runMatches(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if flagScript == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear requires --script")
			os.Exit(1)
		}
		if err := store.ClearMatches(flagScript); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared matches for %s\n", flagScript)
		return
	}

	var matches []storage.MatchRecord
	if flagScript != "" {
		matches, err = store.MatchesByScript(flagScript, flagLimit)
	} else {
		matches, err = store.RecentMatches(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if flagScript != "" {
		fmt.Printf("Matches - %s\n", flagScript)
	} else {
		fmt.Println("Recent matches")
	}
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ladders run <script> --save' or 'ladders play <script>' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %-7s  %-7s  %-6s  %s\n", "When", "Script", "Board", "Players", "Winner", "Turns")
	fmt.Printf("  %-16s  %-20s  %-7s  %-7s  %-6s  %s\n", "----", "------", "-----", "-------", "------", "-----")

	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-16s  %-20s  %-7s  %-7d  %-6s  %d\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Script,
			fmt.Sprintf("%dx%d", m.Columns, m.Rows),
			m.Players,
			winner,
			m.Turns,
		)
	}

	if flagScript != "" {
		printWinCounts(store, flagScript)
	}
}

// printWinCounts shows the per-player win tally for a script.
func printWinCounts(store *storage.Store, scriptName string) {
	counts, err := store.WinCounts(scriptName)
	if err != nil {
		return
	}

	players := make([]string, 0, len(counts))
	for p := range counts {
		if p != "" {
			players = append(players, p)
		}
	}
	sort.Strings(players)

	fmt.Println()
	fmt.Println("Wins:")
	for _, p := range players {
		fmt.Printf("  %s: %d\n", p, counts[p])
	}
	if n := counts[""]; n > 0 {
		fmt.Printf("  no winner: %d\n", n)
	}
}
