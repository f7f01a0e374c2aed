package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakes-ladders/internal/config"
	"github.com/vovakirdan/snakes-ladders/internal/platform/tui"
	"github.com/vovakirdan/snakes-ladders/internal/script"
	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <script>",
	Short: "Replay a script turn by turn",
	Long: `Replay the given script interactively, one player-turn at a time.

Controls:
  Space/N    - Resolve the next turn
  A          - Toggle auto-play
  Tab        - Match history
  Q/Ctrl+C   - Quit

The finished replay is recorded in the matches database.

Examples:
  ladders play game.txt
  ladders play game.txt --db ./matches.db`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lines, err := script.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, rounds, err := tui.Load(cfg.Defaults.Commands(), lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		// Continue without storage - the replay still works
		store = nil
	}

	name := filepath.Base(args[0])
	runErr := tui.Run(tui.NewModel(name, g, rounds, store, width, height))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", runErr)
		os.Exit(1)
	}
}
