package core

import (
	"fmt"
	"strings"
	"sync"
)

// Default panel size: a 128x64 OLED in terminal mode with an 8x8 font.
const (
	PanelCols = 16
	PanelRows = 8
)

// TextPanel is an in-memory character display implementing Display.
// Text wraps at the right edge; anything written past the last row is dropped.
// It is safe to read from another goroutine while the engine writes to it.
type TextPanel struct {
	mu     sync.RWMutex
	width  int
	height int
	cells  [][]rune
	row    int
	col    int
}

// NewTextPanel creates a blank panel with the given dimensions.
func NewTextPanel(width, height int) *TextPanel {
	p := &TextPanel{
		width:  width,
		height: height,
	}
	p.cells = make([][]rune, height)
	for y := range p.cells {
		p.cells[y] = make([]rune, width)
	}
	p.clear()
	return p
}

// Width returns the panel width in characters.
func (p *TextPanel) Width() int {
	return p.width
}

// Height returns the panel height in characters.
func (p *TextPanel) Height() int {
	return p.height
}

// Clear blanks the panel and homes the cursor.
func (p *TextPanel) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clear()
	return nil
}

func (p *TextPanel) clear() {
	for y := range p.cells {
		for x := range p.cells[y] {
			p.cells[y][x] = ' '
		}
	}
	p.row, p.col = 0, 0
}

// SetCursor moves the write position.
func (p *TextPanel) SetCursor(row, col int) error {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		return fmt.Errorf("panel: cursor (%d, %d) outside %dx%d", row, col, p.width, p.height)
	}
	p.mu.Lock()
	p.row, p.col = row, col
	p.mu.Unlock()
	return nil
}

// WriteText writes s at the cursor. '\n' starts the next row.
func (p *TextPanel) WriteText(s string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range s {
		if r == '\n' {
			p.row++
			p.col = 0
			continue
		}
		if p.col >= p.width {
			p.row++
			p.col = 0
		}
		if p.row >= p.height {
			continue
		}
		p.cells[p.row][p.col] = r
		p.col++
	}
	return nil
}

// Cursor returns the current write position.
func (p *TextPanel) Cursor() (row, col int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.row, p.col
}

// Row returns a copy of the specified row as a string.
func (p *TextPanel) Row(y int) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if y < 0 || y >= p.height {
		return strings.Repeat(" ", p.width)
	}
	return string(p.cells[y])
}

// Lines returns the non-blank rows with trailing spaces trimmed.
func (p *TextPanel) Lines() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var lines []string
	for _, row := range p.cells {
		if line := strings.TrimRight(string(row), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// String converts the panel to a newline-joined string.
func (p *TextPanel) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(p.width*p.height + p.height)
	for y := 0; y < p.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(p.cells[y]))
	}
	return sb.String()
}
