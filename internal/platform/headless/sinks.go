package headless

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whackamole/internal/core"
)

// LogLights logs the lit slots whenever they change.
type LogLights struct {
	logger *log.Logger
	last   []int
}

// NewLogLights creates a light sink writing to logger.
func NewLogLights(logger *log.Logger) *LogLights {
	return &LogLights{logger: logger}
}

// Write logs the frame if the set of lit slots changed.
func (l *LogLights) Write(frame core.Frame) error {
	lit := frame.Lit()
	if slices.Equal(lit, l.last) {
		return nil
	}
	l.last = lit
	l.logger.Debug("lights", "lit", lit)
	return nil
}

// LogDisplay is a text panel that logs its contents after every write.
type LogDisplay struct {
	*core.TextPanel
	logger *log.Logger
	last   string
}

// NewLogDisplay creates a 16x8 panel logging to logger.
func NewLogDisplay(logger *log.Logger) *LogDisplay {
	return &LogDisplay{
		TextPanel: core.NewTextPanel(core.PanelCols, core.PanelRows),
		logger:    logger,
	}
}

// WriteText writes at the cursor and logs the panel.
func (d *LogDisplay) WriteText(s string) error {
	if err := d.TextPanel.WriteText(s); err != nil {
		return err
	}
	text := strings.Join(d.Lines(), " | ")
	if text != d.last {
		d.last = text
		d.logger.Info("panel", "text", text)
	}
	return nil
}
