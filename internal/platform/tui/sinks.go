package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whackamole/internal/core"
	"github.com/vovakirdan/whackamole/internal/mole"
)

// FrameMsg carries a light frame from the engine to the view.
type FrameMsg core.Frame

// PanelMsg carries the text panel contents, one string per row.
type PanelMsg []string

// GameOverMsg reports a finished game.
type GameOverMsg mole.GameReport

// EngineDoneMsg is sent when the engine loop stops on its own.
type EngineDoneMsg struct {
	Err error
}

// sender is the part of *tea.Program the sinks need.
type sender interface {
	Send(msg tea.Msg)
}

// Lights forwards light frames to the program.
type Lights struct {
	out sender
}

// NewLights creates a light sink.
func NewLights(out sender) *Lights {
	return &Lights{out: out}
}

// Write sends the frame.
func (l *Lights) Write(frame core.Frame) error {
	l.out.Send(FrameMsg(frame))
	return nil
}

// Panel is a text panel that pushes a snapshot to the program after each change.
type Panel struct {
	*core.TextPanel
	out sender
}

// NewPanel creates a 16x8 panel sink.
func NewPanel(out sender) *Panel {
	return &Panel{
		TextPanel: core.NewTextPanel(core.PanelCols, core.PanelRows),
		out:       out,
	}
}

// Clear blanks the panel.
func (p *Panel) Clear() error {
	if err := p.TextPanel.Clear(); err != nil {
		return err
	}
	p.publish()
	return nil
}

// WriteText writes at the cursor.
func (p *Panel) WriteText(s string) error {
	if err := p.TextPanel.WriteText(s); err != nil {
		return err
	}
	p.publish()
	return nil
}

func (p *Panel) publish() {
	rows := make([]string, p.Height())
	for r := range rows {
		rows[r] = p.Row(r)
	}
	p.out.Send(PanelMsg(rows))
}
