package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/whackamole/internal/mole"
)

// maxHistory is how many finished games the side table keeps.
const maxHistory = 8

// History is the table of games finished since the cabinet was switched on.
type History struct {
	games []mole.GameReport
	best  uint32
	table table.Model
}

// NewHistory creates an empty history table.
func NewHistory() History {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 6},
		{Title: "Round", Width: 6},
		{Title: "Time", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxHistory+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return History{table: t}
}

// Add records a finished game. Only the most recent games are shown.
func (h *History) Add(r mole.GameReport) {
	h.games = append(h.games, r)
	if r.Score > h.best {
		h.best = r.Score
	}

	start := max(len(h.games)-maxHistory, 0)
	rows := make([]table.Row, 0, len(h.games)-start)
	for i := len(h.games) - 1; i >= start; i-- {
		g := h.games[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.Rounds),
			fmt.Sprintf("%.0fs", g.Duration.Duration().Seconds()),
		})
	}
	h.table.SetRows(rows)
}

// Len returns the number of games played.
func (h History) Len() int {
	return len(h.games)
}

// Best returns the best score this session.
func (h History) Best() uint32 {
	return h.best
}

// View renders the table, or a hint when nothing has been played.
func (h History) View() string {
	if len(h.games) == 0 {
		return statusStyle.Italic(true).Render("No games yet.")
	}
	return h.table.View()
}
