// Package game implements the Snakes and Ladders engine: board geometry,
// player state, the command grammar and the turn-resolution rules.
// The engine is deterministic and contains no external dependencies;
// the platform handles I/O, persistence and presentation.
package game

import "fmt"

// MaxCells caps the board size so cell indices always fit the 3-character
// rendered field.
const MaxCells = 999

// PowerType identifies a single-use powerup. A player holds at most one;
// landing on another powerup cell overwrites it.
type PowerType int

const (
	PowerNone PowerType = iota
	PowerEscalator
	PowerAntivenom
	PowerDouble
)

// ParsePowerType maps a script keyword to a PowerType.
func ParsePowerType(name string) (PowerType, error) {
	switch name {
	case "escalator":
		return PowerEscalator, nil
	case "antivenom":
		return PowerAntivenom, nil
	case "double":
		return PowerDouble, nil
	default:
		return PowerNone, fmt.Errorf("game: unknown powerup %q", name)
	}
}

// String returns the script keyword for the powerup.
func (p PowerType) String() string {
	switch p {
	case PowerEscalator:
		return "escalator"
	case PowerAntivenom:
		return "antivenom"
	case PowerDouble:
		return "double"
	default:
		return "none"
	}
}

// label returns the two-character render label for a powerup cell.
func (p PowerType) label() string {
	switch p {
	case PowerEscalator:
		return "e "
	case PowerAntivenom:
		return "a "
	case PowerDouble:
		return "d "
	default:
		return "  "
	}
}

// CellKind tags the single special property a cell can carry.
type CellKind int

const (
	CellPlain CellKind = iota
	CellLadderStart
	CellSnakeStart
	CellPowerUp
	CellWinning
)

// Cell is one board position's property. Kind decides which of the other
// fields is meaningful: End for ladder and snake starts, Power for powerups.
type Cell struct {
	Kind  CellKind
	End   int
	Power PowerType
}

// Label returns the two-character property label used in the rendered grid.
func (c Cell) Label() string {
	switch c.Kind {
	case CellSnakeStart:
		return " S"
	case CellLadderStart:
		return " L"
	case CellPowerUp:
		return c.Power.label()
	default:
		return "  "
	}
}

// Board is the fixed game geometry plus the per-cell property table.
// Cell indices are 1-based; index 1 is the bottom-left corner and the
// numbering snakes back and forth up the rows.
type Board struct {
	columns int
	rows    int
	cells   []Cell
}

// NewBoard creates a columns x rows board with every cell plain and the
// highest-numbered cell marked winning. Boards over MaxCells are a fatal
// configuration error.
func NewBoard(columns, rows int) (*Board, error) {
	if columns*rows > MaxCells {
		return nil, fmt.Errorf("game: %w: %dx%d is %d cells (max %d)",
			ErrBoardTooLarge, columns, rows, columns*rows, MaxCells)
	}
	b := &Board{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
	b.cells[len(b.cells)-1] = Cell{Kind: CellWinning}
	return b, nil
}

// Columns returns the board width in cells.
func (b *Board) Columns() int { return b.columns }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// Size returns the total cell count, which is also the winning cell's index.
func (b *Board) Size() int { return b.columns * b.rows }

// Cell returns the property of the 1-based cell index.
func (b *Board) Cell(ix int) Cell { return b.cells[ix-1] }

// SetCell overwrites the property at the 1-based cell index. The caller is
// trusted to keep the winning cell intact and the index on the board.
func (b *Board) SetCell(ix int, c Cell) { b.cells[ix-1] = c }

// Index maps a (row, column) pair to its boustrophedon cell number: row 1 is
// the bottom row numbered left to right, row 2 runs right to left, and so on.
// Used only for rendering; gameplay works on indices directly.
func (b *Board) Index(row, column int) int {
	if row%2 == 1 {
		return (row-1)*b.columns + column
	}
	return (row-1)*b.columns + (b.columns - column + 1)
}
