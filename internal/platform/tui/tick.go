// Package tui provides the Bubble Tea replay interface for watching scripts
// play out turn by turn, and the Wish SSH server that exposes it remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives auto-play: one player-turn is resolved per tick.
type TickMsg time.Time

// autoPlayInterval is the delay between auto-played turns.
const autoPlayInterval = 400 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends the next auto-play tick.
func tickCmd() tea.Cmd {
	return tea.Tick(autoPlayInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
