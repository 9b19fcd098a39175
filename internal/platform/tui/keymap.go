package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whackamole/internal/core"
)

// KeyMap defines the terminal cabinet key bindings.
type KeyMap struct {
	Holes key.Binding
	Start key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Holes, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Holes, k.Start},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	holes := make([]string, 0, core.SlotCount)
	for i := range core.SlotCount {
		holes = append(holes, string(core.KeyForSlot(i)))
	}

	return KeyMap{
		Holes: key.NewBinding(
			key.WithKeys(holes...),
			key.WithHelp("0-8", "whack"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("any key", "start"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyRune translates a key message into what the cabinet keypad would report.
// Keys with no sensible rune (arrows, function keys) are ignored.
func keyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return msg.Runes[0], true
		}
	case tea.KeySpace:
		return ' ', true
	case tea.KeyEnter:
		return '\r', true
	}
	return 0, false
}
