// Package config provides YAML-based configuration loading for the ladders
// CLI: game defaults applied before a script runs and runner behavior.
package config

import "github.com/vovakirdan/snakes-ladders/internal/game"

// Config holds everything read from ladders.yaml.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Runner   Runner   `yaml:"runner"`
}

// Defaults seed a fresh game before a script is applied; script commands
// then override them one by one (a board command resets the board, and so
// on). Zero values leave the corresponding part unconfigured.
type Defaults struct {
	Columns int   `yaml:"columns"`
	Rows    int   `yaml:"rows"`
	Players int   `yaml:"players"`
	Dice    []int `yaml:"dice"`
}

// Runner controls script execution behavior.
type Runner struct {
	Trace bool `yaml:"trace"`
}

// Commands translates the configured defaults into setup commands, in the
// order they must be applied. Unset parts produce no command.
func (d Defaults) Commands() []game.Command {
	var cmds []game.Command
	if d.Columns > 0 && d.Rows > 0 {
		cmds = append(cmds, game.Command{Kind: game.CmdBoard, Columns: d.Columns, Rows: d.Rows})
	}
	if d.Players > 0 {
		cmds = append(cmds, game.Command{Kind: game.CmdPlayers, Count: d.Players})
	}
	if len(d.Dice) > 0 {
		cmds = append(cmds, game.Command{Kind: game.CmdDice, Dice: d.Dice})
	}
	return cmds
}
