package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snakes-ladders/internal/game"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ladders.yaml")
	content := `
defaults:
  columns: 3
  rows: 4
  players: 2
  dice: [1, 2, 2, 2, 2]
runner:
  trace: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Defaults.Columns != 3 || cfg.Defaults.Rows != 4 {
		t.Errorf("board defaults = %dx%d, want 3x4", cfg.Defaults.Columns, cfg.Defaults.Rows)
	}
	if len(cfg.Defaults.Dice) != 5 {
		t.Errorf("dice = %v, want 5 values", cfg.Defaults.Dice)
	}
	if !cfg.Runner.Trace {
		t.Error("trace should be enabled")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for an explicit path that does not exist")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultLaddersYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg.Defaults.Columns != 10 || cfg.Defaults.Rows != 10 {
		t.Errorf("embedded board = %dx%d, want 10x10", cfg.Defaults.Columns, cfg.Defaults.Rows)
	}
	if len(cfg.Defaults.Dice) == 0 {
		t.Error("embedded default should carry a dice sequence")
	}
}

func TestDefaultsCommands(t *testing.T) {
	d := Defaults{Columns: 3, Rows: 4, Players: 2, Dice: []int{1, 2}}
	cmds := d.Commands()

	if len(cmds) != 3 {
		t.Fatalf("len(Commands()) = %d, want 3", len(cmds))
	}
	if cmds[0].Kind != game.CmdBoard || cmds[1].Kind != game.CmdPlayers || cmds[2].Kind != game.CmdDice {
		t.Errorf("command order = %v, %v, %v; want board, players, dice",
			cmds[0].Kind, cmds[1].Kind, cmds[2].Kind)
	}

	// A game seeded from the defaults is immediately playable.
	g := game.New()
	for _, cmd := range cmds {
		if err := g.Apply(cmd); err != nil {
			t.Fatalf("Apply(%+v) failed: %v", cmd, err)
		}
	}
	if err := g.Ready(); err != nil {
		t.Errorf("Ready() = %v, want nil", err)
	}
}

func TestDefaultsCommandsEmpty(t *testing.T) {
	if cmds := (Defaults{}).Commands(); len(cmds) != 0 {
		t.Errorf("empty defaults produced %d commands, want 0", len(cmds))
	}
}
