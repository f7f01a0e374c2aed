package game

// MaxPlayers is the player-count cap; players are named A through Z.
const MaxPlayers = 26

// Player is one participant's mutable state: the occupied cell and the
// currently held powerup (PowerNone when empty). Players are created on
// cell 1 and mutated only by the turn-resolution engine afterwards.
type Player struct {
	Pos   int
	Power PowerType
}

// PlayerName returns the letter for a 0-based player index: A, B, C, ...
func PlayerName(ix int) byte {
	return byte('A' + ix)
}
