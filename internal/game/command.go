package game

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind tags the script command variants.
type CommandKind int

const (
	CmdBoard CommandKind = iota
	CmdPlayers
	CmdDice
	CmdLadder
	CmdSnake
	CmdPowerUp
	CmdTurns
)

// Command is one parsed script line. Only the fields belonging to Kind are
// set: Columns/Rows for board, Count for players and turns, Dice for dice,
// Start/End for ladder and snake, Power/Cells for powerup.
type Command struct {
	Kind    CommandKind
	Columns int
	Rows    int
	Count   int
	Dice    []int
	Start   int
	End     int
	Power   PowerType
	Cells   []int
}

// ParseCommand parses a single script line: a keyword followed by
// space-separated arguments. Unknown keywords, wrong arity and non-numeric
// arguments are reported with the offending line; the engine does not try
// to recover from malformed input.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("game: empty command line")
	}
	keyword, args := fields[0], fields[1:]

	switch keyword {
	case "board":
		if len(args) != 2 {
			return Command{}, arityErr(line, "board columns rows")
		}
		nums, err := atoiAll(line, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdBoard, Columns: nums[0], Rows: nums[1]}, nil

	case "players":
		if len(args) != 1 {
			return Command{}, arityErr(line, "players count")
		}
		n, err := atoi(line, args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdPlayers, Count: n}, nil

	case "dice":
		if len(args) == 0 {
			return Command{}, arityErr(line, "dice value...")
		}
		dice, err := atoiAll(line, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdDice, Dice: dice}, nil

	case "ladder", "snake":
		if len(args) != 2 {
			return Command{}, arityErr(line, keyword+" start end")
		}
		nums, err := atoiAll(line, args)
		if err != nil {
			return Command{}, err
		}
		kind := CmdLadder
		if keyword == "snake" {
			kind = CmdSnake
		}
		return Command{Kind: kind, Start: nums[0], End: nums[1]}, nil

	case "powerup":
		if len(args) < 2 {
			return Command{}, arityErr(line, "powerup kind cell...")
		}
		power, err := ParsePowerType(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w in %q", err, line)
		}
		cells, err := atoiAll(line, args[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdPowerUp, Power: power, Cells: cells}, nil

	case "turns":
		if len(args) != 1 {
			return Command{}, arityErr(line, "turns count")
		}
		n, err := atoi(line, args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdTurns, Count: n}, nil

	default:
		return Command{}, fmt.Errorf("game: unknown command %q in %q", keyword, line)
	}
}

func arityErr(line, want string) error {
	return fmt.Errorf("game: bad command %q, want %q", line, want)
}

func atoi(line, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("game: bad number %q in %q", s, line)
	}
	return n, nil
}

func atoiAll(line string, args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, s := range args {
		n, err := atoi(line, s)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
