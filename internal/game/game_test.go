package game

import (
	"errors"
	"strings"
	"testing"
)

// newTestGame parses and applies script lines, failing the test on any error.
func newTestGame(t *testing.T, lines ...string) *Game {
	t.Helper()
	g := New()
	for _, line := range lines {
		cmd, err := ParseCommand(line)
		if err != nil {
			t.Fatalf("ParseCommand(%q) failed: %v", line, err)
		}
		if err := g.Apply(cmd); err != nil {
			t.Fatalf("Apply(%q) failed: %v", line, err)
		}
	}
	return g
}

var canonicalScript = []string{
	"board 3 4",
	"players 2",
	"dice 1 2 2 2 2",
	"ladder 5 11",
	"snake 8 4",
	"powerup escalator 6 9",
	"powerup antivenom 7",
	"powerup double 4",
	"turns 10",
}

const canonicalOutput = `Player B won
+---+---+---+
| 12| 11| 10|
|B  |   |   |
+---+---+---+
|  7|  8|  9|
| a |  S| e |
+---+---+---+
|  6|  5|  4|
| e |  L|Ad |
+---+---+---+
|  1|  2|  3|
|   |   |   |
+---+---+---+`

func TestCanonicalGame(t *testing.T) {
	g := newTestGame(t, canonicalScript...)

	w, ok := g.Winner()
	if !ok {
		t.Fatal("expected a winner after 10 turns")
	}
	if w != 1 {
		t.Errorf("winner = %c, want B", PlayerName(w))
	}

	// B wins on the 6th player-turn: the turns command stops early and the
	// counter freezes there.
	if g.Turn() != 6 {
		t.Errorf("turn counter = %d, want 6", g.Turn())
	}

	players := g.Players()
	if players[0].Pos != 4 {
		t.Errorf("player A at %d, want 4", players[0].Pos)
	}
	if players[1].Pos != 12 {
		t.Errorf("player B at %d, want 12", players[1].Pos)
	}

	if got := g.Render(); got != canonicalOutput {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, canonicalOutput)
	}
}

func TestPlayTurnsStopsAtWin(t *testing.T) {
	g := newTestGame(t, "board 3 4", "players 2", "dice 5 1 5")

	// A walks 1 -> 6 -> 11 -> 12 and wins opening round 3;
	// B's turn that round is never resolved.
	g.PlayTurns(5)

	if w, ok := g.Winner(); !ok || w != 0 {
		t.Fatalf("Winner() = %d, %v; want 0, true", w, ok)
	}
	if got := g.Players()[1].Pos; got != 7 {
		t.Errorf("player B at %d, want 7 (unresolved turns stay unresolved)", got)
	}
	if g.Turn() != 5 {
		t.Errorf("turn counter = %d, want 5", g.Turn())
	}
}

func TestPlayersCommandResetsMidGame(t *testing.T) {
	g := newTestGame(t, "board 3 4", "players 2", "dice 2", "powerup double 3", "turns 2")

	if players := g.Players(); players[0].Pos == 1 && players[1].Pos == 1 {
		t.Fatal("setup failed: nobody moved")
	}

	if err := g.Apply(Command{Kind: CmdPlayers, Count: 3}); err != nil {
		t.Fatalf("Apply(players 3) failed: %v", err)
	}

	for i, p := range g.Players() {
		if p.Pos != 1 {
			t.Errorf("player %c at %d after reset, want 1", PlayerName(i), p.Pos)
		}
		if p.Power != PowerNone {
			t.Errorf("player %c holds %v after reset, want none", PlayerName(i), p.Power)
		}
	}
}

func TestApplyConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		failing  string
		expected error
	}{
		{
			name:     "board over the cap",
			lines:    nil,
			failing:  "board 100 10",
			expected: ErrBoardTooLarge,
		},
		{
			name:     "too many players",
			lines:    []string{"board 3 4"},
			failing:  "players 27",
			expected: ErrTooManyPlayers,
		},
		{
			name:     "turns before board",
			lines:    []string{"players 2", "dice 1"},
			failing:  "turns 1",
			expected: ErrNotConfigured,
		},
		{
			name:     "turns before players",
			lines:    []string{"board 3 4", "dice 1"},
			failing:  "turns 1",
			expected: ErrNotConfigured,
		},
		{
			name:     "turns before dice",
			lines:    []string{"board 3 4", "players 2"},
			failing:  "turns 1",
			expected: ErrNotConfigured,
		},
		{
			name:     "ladder before board",
			lines:    nil,
			failing:  "ladder 5 11",
			expected: ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.lines...)
			cmd, err := ParseCommand(tt.failing)
			if err != nil {
				t.Fatalf("ParseCommand(%q) failed: %v", tt.failing, err)
			}
			if err := g.Apply(cmd); !errors.Is(err, tt.expected) {
				t.Errorf("Apply(%q) error = %v, want %v", tt.failing, err, tt.expected)
			}
		})
	}
}

func TestPlayersAtCapIsAllowed(t *testing.T) {
	g := newTestGame(t, "board 3 4", "players 26")
	if got := g.NumPlayers(); got != 26 {
		t.Errorf("NumPlayers() = %d, want 26", got)
	}
}

func TestDiceCommandReplacesSequence(t *testing.T) {
	g := newTestGame(t, "board 3 4", "players 1", "dice 1 2 3", "dice 5")

	if got := g.NextDie(); got != 5 {
		t.Errorf("NextDie() = %d, want 5 (replacement sequence)", got)
	}
}

func TestWinnerBeforeConfiguration(t *testing.T) {
	g := New()
	if _, ok := g.Winner(); ok {
		t.Error("unconfigured game should have no winner")
	}
}

func TestRenderWithoutWinner(t *testing.T) {
	g := newTestGame(t, "board 3 4", "players 2")

	out := g.Render()
	if strings.Contains(out, "won") {
		t.Error("render should not announce a winner before anyone wins")
	}

	// Both players sit on cell 1; the first by declaration order is shown.
	lines := strings.Split(out, "\n")
	bottom := lines[len(lines)-2]
	if bottom != "|A  |   |   |" {
		t.Errorf("bottom cell line = %q, want %q", bottom, "|A  |   |   |")
	}
}

func TestRenderSingleColumn(t *testing.T) {
	g := newTestGame(t, "board 1 3", "players 1")

	expected := strings.Join([]string{
		"+---+",
		"|  3|",
		"|   |",
		"+---+",
		"|  2|",
		"|   |",
		"+---+",
		"|  1|",
		"|A  |",
		"+---+",
	}, "\n")
	if got := g.Render(); got != expected {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}
