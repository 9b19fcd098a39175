package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/whackamole/internal/config"
	"github.com/vovakirdan/whackamole/internal/core"
	"github.com/vovakirdan/whackamole/internal/mole"
)

// Model is the Bubble Tea model for the terminal cabinet. It never touches the
// engine directly: frames and panel contents arrive as messages and key
// presses leave through the keypad latch.
type Model struct {
	keys      KeyMap
	help      help.Model
	latch     *core.KeyLatch
	history   History
	frame     core.Frame
	panel     []string
	pressed   rune
	flashSeq  int
	keyFlash  time.Duration
	holeWidth int
	width     int
	height    int
	err       error
	quitting  bool
}

// NewModel creates a model feeding presses into latch.
func NewModel(cfg config.TUISettings, latch *core.KeyLatch) Model {
	return Model{
		keys:      DefaultKeyMap(),
		help:      help.New(),
		latch:     latch,
		history:   NewHistory(),
		keyFlash:  time.Duration(cfg.KeyFlashMS) * time.Millisecond,
		holeWidth: cfg.HoleWidth,
	}
}

// Init has nothing to start; the engine goroutine drives the view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case FrameMsg:
		m.frame = core.Frame(msg)

	case PanelMsg:
		m.panel = msg

	case GameOverMsg:
		m.history.Add(mole.GameReport(msg))

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.pressed = 0
		}

	case EngineDoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	r, ok := keyRune(msg)
	if !ok {
		return m, nil
	}
	m.latch.Press(r)

	if m.keyFlash <= 0 {
		return m, nil
	}
	m.pressed = r
	m.flashSeq++
	return m, flashCmd(m.keyFlash, m.flashSeq)
}

// Err returns the engine error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the cabinet.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cabinet := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderHoles(m.frame, m.pressed, m.holeWidth),
		"  ",
		RenderPanel(m.panel),
		"  ",
		m.history.View(),
	)

	status := statusStyle.Render(fmt.Sprintf("games %d  best %d  lit %d",
		m.history.Len(), m.history.Best(), len(m.frame.Lit())))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("WHACK-A-MOLE"),
		"",
		cabinet,
		"",
		status,
		m.help.View(m.keys),
	)
}
