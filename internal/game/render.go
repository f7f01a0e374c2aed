package game

import (
	"fmt"
	"strings"
)

// Render formats the board as the exact text grid consumed by the
// presentation layer. Rows are printed top row first with a +---+ border
// between them; each cell spans two lines, the right-justified cell number
// and then the occupying player's letter (or a space) followed by the cell's
// property label. When a player has won, a "Player X won" line precedes the
// grid. The output carries no trailing newline; callers add their own.
func (g *Game) Render() string {
	var sb strings.Builder
	if w, ok := g.Winner(); ok {
		fmt.Fprintf(&sb, "Player %c won\n", PlayerName(w))
	}

	border := strings.Repeat("+---", g.board.Columns()) + "+"
	for row := g.board.Rows(); row >= 1; row-- {
		sb.WriteString(border)
		sb.WriteByte('\n')
		for column := 1; column <= g.board.Columns(); column++ {
			fmt.Fprintf(&sb, "|%3d", g.board.Index(row, column))
		}
		sb.WriteString("|\n")
		for column := 1; column <= g.board.Columns(); column++ {
			ix := g.board.Index(row, column)
			sb.WriteByte('|')
			sb.WriteByte(g.letterAt(ix))
			sb.WriteString(g.board.Cell(ix).Label())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// letterAt returns the letter of the first player occupying the cell, or a
// space when it is empty.
func (g *Game) letterAt(ix int) byte {
	for i := range g.players {
		if g.players[i].Pos == ix {
			return PlayerName(i)
		}
	}
	return ' '
}
