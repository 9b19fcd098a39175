package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/whackamole/internal/core"
)

var (
	holeBorder    = lipgloss.RoundedBorder()
	idleBorder    = lipgloss.Color("240")
	pressedBorder = lipgloss.Color("15")
	emptyHole     = lipgloss.Color("235")
	labelColor    = lipgloss.Color("250")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("117")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// holeStyle returns the style for one hole lit with c.
func holeStyle(c core.RGB, pressed bool, width int) lipgloss.Style {
	bg := emptyHole
	fg := labelColor
	if !c.IsBlack() {
		bg = lipgloss.Color(c.Hex())
		fg = lipgloss.Color("0")
	}
	border := idleBorder
	if pressed {
		border = pressedBorder
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(1).
		Align(lipgloss.Center).
		Background(bg).
		Foreground(fg).
		Bold(true).
		Border(holeBorder).
		BorderForeground(border)
}

// RenderHoles draws the 3x3 light grid with each hole labelled by its key.
// pressed is the key currently highlighted, or 0.
func RenderHoles(frame core.Frame, pressed rune, width int) string {
	width = core.Clamp(width, 3, 15)
	rows := make([]string, 0, core.GridSize)
	for r := range core.GridSize {
		cells := make([]string, 0, core.GridSize)
		for c := range core.GridSize {
			idx := core.SlotAt(r, c)
			label := core.KeyForSlot(idx)
			cells = append(cells, holeStyle(frame[idx], pressed == label, width).Render(string(label)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderPanel draws the text panel inside a frame. Missing rows are blank.
func RenderPanel(rows []string) string {
	lines := make([]string, core.PanelRows)
	for i := range lines {
		line := ""
		if i < len(rows) {
			line = rows[i]
		}
		if n := len([]rune(line)); n < core.PanelCols {
			line += strings.Repeat(" ", core.PanelCols-n)
		}
		lines[i] = line
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
