package game

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(3, 4)
	if err != nil {
		t.Fatalf("NewBoard(3, 4) failed: %v", err)
	}

	if b.Size() != 12 {
		t.Errorf("Size() = %d, want 12", b.Size())
	}
	if got := b.Cell(b.Size()).Kind; got != CellWinning {
		t.Errorf("last cell kind = %v, want CellWinning", got)
	}
	for ix := 1; ix < b.Size(); ix++ {
		if got := b.Cell(ix).Kind; got != CellPlain {
			t.Errorf("cell %d kind = %v, want CellPlain", ix, got)
		}
	}
}

func TestNewBoardTooLarge(t *testing.T) {
	if _, err := NewBoard(100, 10); !errors.Is(err, ErrBoardTooLarge) {
		t.Errorf("NewBoard(100, 10) error = %v, want ErrBoardTooLarge", err)
	}

	// 999 cells is exactly the cap.
	if _, err := NewBoard(111, 9); err != nil {
		t.Errorf("NewBoard(111, 9) failed: %v", err)
	}
}

func TestBoardIndexBoustrophedon(t *testing.T) {
	b, err := NewBoard(3, 4)
	if err != nil {
		t.Fatalf("NewBoard(3, 4) failed: %v", err)
	}

	tests := []struct {
		row, column int
		expected    int
	}{
		// Row 1 runs left to right.
		{1, 1, 1},
		{1, 2, 2},
		{1, 3, 3},
		// Row 2 runs right to left.
		{2, 1, 6},
		{2, 2, 5},
		{2, 3, 4},
		// Row 3 left to right again.
		{3, 1, 7},
		{3, 3, 9},
		// Row 4 right to left; column 1 is the top-left corner.
		{4, 1, 12},
		{4, 3, 10},
	}

	for _, tt := range tests {
		if got := b.Index(tt.row, tt.column); got != tt.expected {
			t.Errorf("Index(%d, %d) = %d, want %d", tt.row, tt.column, got, tt.expected)
		}
	}
}

func TestBoardSetCellOverwrites(t *testing.T) {
	b, err := NewBoard(3, 4)
	if err != nil {
		t.Fatalf("NewBoard(3, 4) failed: %v", err)
	}

	b.SetCell(5, Cell{Kind: CellLadderStart, End: 11})
	if got := b.Cell(5); got.Kind != CellLadderStart || got.End != 11 {
		t.Errorf("cell 5 = %+v, want ladder start to 11", got)
	}

	// Later declarations replace earlier ones outright.
	b.SetCell(5, Cell{Kind: CellPowerUp, Power: PowerDouble})
	if got := b.Cell(5); got.Kind != CellPowerUp || got.Power != PowerDouble {
		t.Errorf("cell 5 = %+v, want double powerup", got)
	}
}

func TestCellLabel(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected string
	}{
		{"plain", Cell{Kind: CellPlain}, "  "},
		{"winning", Cell{Kind: CellWinning}, "  "},
		{"snake start", Cell{Kind: CellSnakeStart, End: 4}, " S"},
		{"ladder start", Cell{Kind: CellLadderStart, End: 11}, " L"},
		{"escalator", Cell{Kind: CellPowerUp, Power: PowerEscalator}, "e "},
		{"antivenom", Cell{Kind: CellPowerUp, Power: PowerAntivenom}, "a "},
		{"double", Cell{Kind: CellPowerUp, Power: PowerDouble}, "d "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}
