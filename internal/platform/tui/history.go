package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakes-ladders/internal/storage"
)

// maxHistoryRows caps how many matches the history screen loads.
const maxHistoryRows = 100

// HistoryModel is the match history screen, a scrollable table of the most
// recently recorded matches.
type HistoryModel struct {
	store   *storage.Store
	table   table.Model
	matches []storage.MatchRecord
	width   int
	height  int
}

// NewHistoryModel creates a history model and loads recent matches.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadMatches()
	return m
}

// createTable creates the history table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Script", Width: 18},
		{Title: "Board", Width: 7},
		{Title: "Players", Width: 7},
		{Title: "Winner", Width: 6},
		{Title: "Turns", Width: 5},
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadMatches loads the most recent matches into the table.
func (m *HistoryModel) loadMatches() {
	if m.store == nil {
		m.matches = nil
		m.updateTableRows()
		return
	}

	matches, err := m.store.RecentMatches(maxHistoryRows)
	if err != nil {
		m.matches = nil
	} else {
		m.matches = matches
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, rec := range m.matches {
		winner := rec.Winner
		if winner == "" {
			winner = "-"
		}
		rows[i] = table.Row{
			rec.CreatedAt.Format("Jan 02 15:04"),
			rec.Script,
			fmt.Sprintf("%dx%d", rec.Columns, rec.Rows),
			fmt.Sprintf("%d", rec.Players),
			winner,
			fmt.Sprintf("%d", rec.Turns),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1).
		Render("MATCH HISTORY")

	if len(m.matches) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No matches recorded yet.\nReplay a script to record one.")
		return title + "\n\n" + empty
	}

	footer := statusStyle.Render("esc back  q quit")
	return title + "\n\n" + m.table.View() + "\n\n" + footer
}
