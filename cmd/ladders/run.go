package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/config"
	"github.com/vovakirdan/snakes-ladders/internal/game"
	"github.com/vovakirdan/snakes-ladders/internal/script"
	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var (
	flagTrace bool
	flagSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a script and print the final board",
	Long: `Run a command script to completion and print the result.

The script is read from the given file, or from stdin when no file is
given. Configured defaults (board, players, dice) are applied first;
script commands then override them.

The output is the final board grid, preceded by a winner line when a
player reached the last cell.

Examples:
  ladders run game.txt
  ladders run < game.txt
  ladders run game.txt --trace
  ladders run game.txt --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every command and resolved turn")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the result in the matches database")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var src io.Reader = os.Stdin
	name := "stdin"
	if len(args) == 1 {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		src = f
		name = filepath.Base(args[0])
	}

	trace := flagTrace || cfg.Runner.Trace
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ladders"})
	if trace {
		logger.SetLevel(log.DebugLevel)
	}

	g := game.New()
	for _, c := range cfg.Defaults.Commands() {
		if applyErr := g.Apply(c); applyErr != nil {
			fmt.Fprintf(os.Stderr, "Error in config defaults: %v\n", applyErr)
			os.Exit(1)
		}
	}

	runner := script.NewRunner(logger, trace)
	res, err := runner.Run(g, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(g.Render())

	if flagSave {
		saveResult(g, name, res)
	}
}

// saveResult records a finished run. Failures warn but do not change the
// exit status, the run itself succeeded.
func saveResult(g *game.Game, name string, res script.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		return
	}
	defer store.Close()

	rec := storage.MatchRecord{
		Script:  name,
		Players: g.NumPlayers(),
		Turns:   res.Turns,
	}
	if b := g.Board(); b != nil {
		rec.Columns = b.Columns()
		rec.Rows = b.Rows()
	}
	if res.HasWinner {
		rec.Winner = string(res.Winner)
	}

	if _, err := store.SaveMatch(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save match: %v\n", err)
	}
}
