package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakes-ladders/internal/game"
	"github.com/vovakirdan/snakes-ladders/internal/script"
	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boardStyle  = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	rollStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Load applies a script's setup commands (seeded by the configured defaults)
// to a fresh game and returns it together with the total rounds budget of
// the script's turns commands.
func Load(defaults []game.Command, lines []script.Line) (*game.Game, int, error) {
	g := game.New()
	for _, cmd := range defaults {
		if err := g.Apply(cmd); err != nil {
			return nil, 0, fmt.Errorf("tui: config defaults: %w", err)
		}
	}

	rounds := 0
	for _, line := range lines {
		if line.Cmd.Kind == game.CmdTurns {
			rounds += line.Cmd.Count
			continue
		}
		if err := g.Apply(line.Cmd); err != nil {
			return nil, 0, fmt.Errorf("tui: line %d: %w", line.No, err)
		}
	}

	if rounds > 0 {
		if err := g.Ready(); err != nil {
			return nil, 0, fmt.Errorf("tui: %w", err)
		}
	}
	return g, rounds, nil
}

// Model is the Bubble Tea model replaying a loaded script turn by turn.
type Model struct {
	game    *game.Game
	name    string
	store   *storage.Store
	keys    KeyMap
	help    help.Model
	history *HistoryModel

	width  int
	height int

	roundsLeft int
	player     int // next player to move within the current round
	lastPlayer int
	lastRoll   int
	started    bool
	done       bool
	saved      bool
	auto       bool
	quitting   bool
}

// NewModel creates a replay model for a loaded game. rounds is the total
// turns budget of the script; a script without turns commands starts done.
func NewModel(name string, g *game.Game, rounds int, store *storage.Store, width, height int) Model {
	return Model{
		game:       g,
		name:       name,
		store:      store,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
		roundsLeft: rounds,
		done:       rounds == 0 || g.NumPlayers() == 0,
	}
}

// Init starts the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// History screen swallows input while open.
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.auto || m.done {
			return m, nil
		}
		m.step()
		if m.done {
			m.auto = false
			return m, nil
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input on the replay screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Step):
		m.auto = false
		m.step()
		return m, nil

	case key.Matches(msg, m.keys.Auto):
		if m.done {
			return m, nil
		}
		m.auto = !m.auto
		if m.auto {
			return m, tickCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.History):
		if m.store == nil {
			return m, nil
		}
		h := NewHistoryModel(m.store, m.width, m.height)
		m.history = &h
		return m, nil
	}

	return m, nil
}

// updateHistory routes messages to the history screen.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.History):
			m.history = nil
			return m, nil
		}
	}

	h, cmd := m.history.Update(msg)
	m.history = &h
	return m, cmd
}

// step resolves the next player-turn and records the match when the replay
// finishes.
func (m *Model) step() {
	if m.done {
		return
	}

	m.lastPlayer = m.player
	m.lastRoll = m.game.NextDie()
	won := m.game.ResolveTurn(m.player)
	m.started = true

	m.player++
	if m.player >= m.game.NumPlayers() {
		m.player = 0
		m.roundsLeft--
	}

	if won || m.roundsLeft == 0 {
		m.done = true
		m.saveResult()
	}
}

// saveResult records the finished replay, once.
func (m *Model) saveResult() {
	if m.store == nil || m.saved {
		return
	}
	m.saved = true

	rec := storage.MatchRecord{
		Script:  m.name,
		Players: m.game.NumPlayers(),
		Turns:   m.game.Turn(),
	}
	if b := m.game.Board(); b != nil {
		rec.Columns = b.Columns()
		rec.Rows = b.Rows()
	}
	if w, ok := m.game.Winner(); ok {
		rec.Winner = string(game.PlayerName(w))
	}
	//nolint:errcheck // Best-effort save, the replay continues regardless
	m.store.SaveMatch(rec)
}

// View renders the replay screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Snakes & Ladders — " + m.name))
	sb.WriteString("\n\n")
	sb.WriteString(boardStyle.Render(m.boardView()))
	sb.WriteString("\n\n")
	sb.WriteString(m.statusView())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// boardView renders the grid, styling the winner banner when present.
func (m Model) boardView() string {
	out := m.game.Render()
	if _, ok := m.game.Winner(); !ok {
		return out
	}
	banner, grid, found := strings.Cut(out, "\n")
	if !found {
		return out
	}
	return wonStyle.Render(banner) + "\n" + grid
}

// statusView renders the roll ticker and per-player summary line.
func (m Model) statusView() string {
	var parts []string

	switch {
	case m.started:
		parts = append(parts, rollStyle.Render(fmt.Sprintf(
			"player %c rolled %d", game.PlayerName(m.lastPlayer), m.lastRoll)))
	case m.done:
		parts = append(parts, statusStyle.Render("nothing to replay"))
	default:
		parts = append(parts, statusStyle.Render("press space to start"))
	}

	players := m.game.Players()
	summary := make([]string, len(players))
	for i, p := range players {
		s := fmt.Sprintf("%c@%d", game.PlayerName(i), p.Pos)
		if p.Power != game.PowerNone {
			s += "[" + p.Power.String() + "]"
		}
		summary[i] = s
	}
	parts = append(parts, statusStyle.Render(fmt.Sprintf(
		"turn %d  rounds left %d  %s",
		m.game.Turn(), m.roundsLeft, strings.Join(summary, " "))))

	if m.done && m.started {
		if w, ok := m.game.Winner(); ok {
			parts = append(parts, wonStyle.Render(fmt.Sprintf(
				"player %c won the match", game.PlayerName(w))))
		} else {
			parts = append(parts, statusStyle.Render("turns exhausted, no winner"))
		}
	}

	return strings.Join(parts, "\n")
}

// Run starts the Bubble Tea program for a replay model.
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
