package game

// resolveRoll turns one die roll for the acting player into zero or more
// relocations and reports whether the game ended.
//
// A held Double doubles the delta and is consumed before the boundary check;
// the consumption stands even when the doubled move is then rejected. A move
// past the last cell is wasted entirely: no movement, no win.
func (g *Game) resolveRoll(actor, roll int) bool {
	delta := roll
	if g.players[actor].Power == PowerDouble {
		delta = 2 * roll
		g.players[actor].Power = PowerNone
	}
	if g.players[actor].Pos+delta > g.board.Size() {
		return false
	}

	// Bump cascade, resolved as a loop over the current mover rather than
	// recursion: a displaced occupant moves by exactly one cell and re-runs
	// the landing rules, possibly displacing yet another player. The chain
	// ends on the first win or on a free cell. The board is trusted not to
	// contain bump loops.
	mover := actor
	for {
		g.players[mover].Pos += delta
		if g.land(mover) {
			return true
		}
		bumped := g.occupantAt(g.players[mover].Pos, mover)
		if bumped < 0 {
			return false
		}
		mover = bumped
		delta = 1
	}
}

// land evaluates the cell the player just arrived on and reports a win.
// Snake and ladder destinations are final positions for the step: their own
// properties are not re-evaluated. The win test is positional (at or beyond
// the last cell), which uniformly covers a direct landing on the winning
// cell, a ladder ending there, an escalator overshoot and a bump onto it.
func (g *Game) land(player int) bool {
	p := &g.players[player]
	switch cell := g.board.Cell(p.Pos); cell.Kind {
	case CellSnakeStart:
		if p.Power == PowerAntivenom {
			// Slide cancelled; the player stays on the snake start.
			p.Power = PowerNone
		} else {
			p.Pos = cell.End
		}

	case CellLadderStart:
		if p.Power == PowerEscalator {
			// Twice the climb, clamped to the last cell.
			p.Power = PowerNone
			p.Pos += 2 * (cell.End - p.Pos)
			if p.Pos > g.board.Size() {
				p.Pos = g.board.Size()
			}
		} else {
			p.Pos = cell.End
		}

	case CellPowerUp:
		p.Power = cell.Power
	}
	return p.Pos >= g.board.Size()
}

// occupantAt returns the index of a player other than except occupying pos,
// or -1 when the cell is free.
func (g *Game) occupantAt(pos, except int) int {
	for i := range g.players {
		if i != except && g.players[i].Pos == pos {
			return i
		}
	}
	return -1
}
