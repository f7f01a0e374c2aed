package config

import (
	_ "embed"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// DefaultConfig returns the hardcoded fallback configuration: the classic
// 10x10 board, two players and a fixed six-value dice cycle.
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Columns: 10,
			Rows:    10,
			Players: 2,
			Dice:    []int{3, 1, 5, 2, 6, 4},
		},
	}
}
