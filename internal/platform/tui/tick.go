// Package tui runs the cabinet in a terminal: Bubble Tea draws the holes and
// the text panel while the engine loop runs on its own goroutine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDoneMsg ends the highlight of a pressed hole. seq ties it to the press
// that started it so a later press is not cut short.
type flashDoneMsg struct {
	seq int
}

// flashCmd schedules the end of a key highlight.
func flashCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}
