// Package script reads command scripts line by line and drives a game to
// completion, preserving the contract of the original stdin-driven program:
// commands apply strictly in order and the first bad line aborts the run.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakes-ladders/internal/game"
)

// Line is one parsed command together with its source position, kept so
// errors and trace logs can point back at the script.
type Line struct {
	No   int
	Text string
	Cmd  game.Command
}

// Parse reads a script from src, skipping blank lines. The first malformed
// line fails the whole parse with its line number.
func Parse(src io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(src)
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		cmd, err := game.ParseCommand(text)
		if err != nil {
			return nil, fmt.Errorf("script: line %d: %w", no, err)
		}
		lines = append(lines, Line{No: no, Text: text, Cmd: cmd})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return lines, nil
}

// Result summarizes a finished script run.
type Result struct {
	Winner    byte // winning player's letter, 0 when nobody won
	HasWinner bool
	Turns     int // player-turns resolved across all turns commands
	Lines     int // command lines applied
}

// Runner applies scripts to a game, optionally tracing every command and
// every resolved turn through a structured logger.
type Runner struct {
	logger *log.Logger
	trace  bool
}

// NewRunner creates a runner. A nil logger disables tracing regardless of
// the trace flag.
func NewRunner(logger *log.Logger, trace bool) *Runner {
	return &Runner{logger: logger, trace: trace && logger != nil}
}

// Run parses src and applies every command to g in order. Errors carry the
// offending line number; the game keeps the state of all commands applied
// before the failure.
func (r *Runner) Run(g *game.Game, src io.Reader) (Result, error) {
	lines, err := Parse(src)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, line := range lines {
		if r.trace {
			r.logger.Debug("command", "line", line.No, "text", line.Text)
		}
		if err := r.apply(g, line.Cmd); err != nil {
			return res, fmt.Errorf("script: line %d: %w", line.No, err)
		}
		res.Lines++
	}

	res.Turns = g.Turn()
	if w, ok := g.Winner(); ok {
		res.Winner = game.PlayerName(w)
		res.HasWinner = true
	}
	return res, nil
}

// apply executes one command. Turns commands are expanded player-turn by
// player-turn when tracing so every roll shows up in the log; the expansion
// follows the same sequencing as Game.PlayTurns.
func (r *Runner) apply(g *game.Game, cmd game.Command) error {
	if cmd.Kind != game.CmdTurns || !r.trace {
		return g.Apply(cmd)
	}

	if err := g.Ready(); err != nil {
		return err
	}
	for round := 0; round < cmd.Count; round++ {
		for p := 0; p < g.NumPlayers(); p++ {
			die := g.NextDie()
			won := g.ResolveTurn(p)
			r.logger.Debug("turn resolved",
				"player", string(game.PlayerName(p)),
				"roll", die,
				"pos", g.Players()[p].Pos,
			)
			if won {
				w, _ := g.Winner()
				r.logger.Info("game over",
					"winner", string(game.PlayerName(w)),
					"turns", g.Turn(),
				)
				return nil
			}
		}
	}
	return nil
}
