// ladders plays scripted Snakes and Ladders matches in the terminal.
//
// Usage:
//
//	ladders run [script]       - Run a script and print the final board
//	ladders play <script>      - Replay a script turn by turn in a TUI
//	ladders matches            - Show recorded match results
//	ladders serve              - Start SSH server for remote replays
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.ladders/matches.db)
//	--config <path>  - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes and Ladders - Scripted matches in your terminal",
	Long: `ladders runs deterministic Snakes and Ladders matches driven by
command scripts: board size, players, a cyclic dice sequence, snakes,
ladders, power-ups and turn counts all come from the script.

Available commands:
  run      - Run a script (or stdin) and print the final board
  play     - Replay a script turn by turn in an interactive TUI
  matches  - View recorded match results
  serve    - Start SSH server for remote replays

Examples:
  ladders run game.txt
  ladders run < game.txt
  ladders play game.txt
  ladders matches --script game.txt
  ladders serve --script game.txt --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ladders/matches.db", "Path to matches database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(serveCmd)
}
