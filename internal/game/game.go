package game

import (
	"errors"
	"fmt"
)

// Configuration errors the engine actively enforces. Everything else in the
// command stream is trusted per the game's contract.
var (
	ErrBoardTooLarge  = errors.New("board too large")
	ErrTooManyPlayers = errors.New("too many players")
	ErrNotConfigured  = errors.New("game not configured")
)

// Game owns the board, the player collection, the cyclic dice sequence and
// the turn counter. Setup commands mutate it freely until the first turns
// command runs; after that only the turn-resolution engine moves players.
type Game struct {
	board   *Board
	players []Player
	dice    []int
	turn    int
}

// New returns an unconfigured game. Board, players and dice must all be
// supplied (in any order) before turns can be played.
func New() *Game {
	return &Game{}
}

// Apply executes one parsed command against the game state. Errors are
// fatal configuration faults; the game is not left in a partially applied
// state for the failing command.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdBoard:
		b, err := NewBoard(cmd.Columns, cmd.Rows)
		if err != nil {
			return err
		}
		g.board = b

	case CmdPlayers:
		if cmd.Count > MaxPlayers {
			return fmt.Errorf("game: %w: %d (max %d)", ErrTooManyPlayers, cmd.Count, MaxPlayers)
		}
		// A players command always starts everyone over on cell 1 with
		// no powerup, discarding any prior progress.
		g.players = make([]Player, cmd.Count)
		for i := range g.players {
			g.players[i].Pos = 1
		}

	case CmdDice:
		g.dice = append([]int(nil), cmd.Dice...)

	case CmdLadder:
		if g.board == nil {
			return fmt.Errorf("game: %w: ladder before board", ErrNotConfigured)
		}
		g.board.SetCell(cmd.Start, Cell{Kind: CellLadderStart, End: cmd.End})

	case CmdSnake:
		if g.board == nil {
			return fmt.Errorf("game: %w: snake before board", ErrNotConfigured)
		}
		g.board.SetCell(cmd.Start, Cell{Kind: CellSnakeStart, End: cmd.End})

	case CmdPowerUp:
		if g.board == nil {
			return fmt.Errorf("game: %w: powerup before board", ErrNotConfigured)
		}
		for _, ix := range cmd.Cells {
			g.board.SetCell(ix, Cell{Kind: CellPowerUp, Power: cmd.Power})
		}

	case CmdTurns:
		if err := g.Ready(); err != nil {
			return err
		}
		g.PlayTurns(cmd.Count)

	default:
		return fmt.Errorf("game: unknown command kind %d", cmd.Kind)
	}
	return nil
}

// Ready reports whether the game can play turns: board, players and dice
// have all been configured.
func (g *Game) Ready() error {
	switch {
	case g.board == nil:
		return fmt.Errorf("game: %w: no board", ErrNotConfigured)
	case len(g.players) == 0:
		return fmt.Errorf("game: %w: no players", ErrNotConfigured)
	case len(g.dice) == 0:
		return fmt.Errorf("game: %w: no dice", ErrNotConfigured)
	default:
		return nil
	}
}

// PlayTurns plays up to count full rounds, each player moving once per round
// in declaration order. The first win anywhere pre-empts the remaining
// players and rounds immediately.
func (g *Game) PlayTurns(count int) {
	for round := 0; round < count; round++ {
		for p := range g.players {
			if g.ResolveTurn(p) {
				return
			}
		}
	}
}

// ResolveTurn rolls the next die from the cyclic sequence for the given
// player and resolves the full movement cascade. The turn counter advances
// exactly once per call, including for rejected moves, and never resets.
// Returns true if any player won during the cascade.
func (g *Game) ResolveTurn(player int) bool {
	die := g.dice[g.turn%len(g.dice)]
	g.turn++
	return g.resolveRoll(player, die)
}

// NextDie returns the die value the next ResolveTurn call will consume.
func (g *Game) NextDie() int {
	return g.dice[g.turn%len(g.dice)]
}

// Winner returns the index of the player occupying the winning cell, if any.
// A player has won iff its position is at or beyond the board size; this is
// the authoritative query and always agrees with the booleans returned by
// ResolveTurn and PlayTurns.
func (g *Game) Winner() (int, bool) {
	if g.board == nil {
		return 0, false
	}
	for i := range g.players {
		if g.players[i].Pos >= g.board.Size() {
			return i, true
		}
	}
	return 0, false
}

// Board returns the configured board, or nil before the board command.
func (g *Game) Board() *Board { return g.board }

// Players returns a copy of the player states in declaration order.
func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

// NumPlayers returns the declared player count.
func (g *Game) NumPlayers() int { return len(g.players) }

// Turn returns how many player-turns have been resolved so far.
func (g *Game) Turn() int { return g.turn }
