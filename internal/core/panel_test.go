package core

import (
	"strings"
	"testing"
)

func TestNewTextPanel(t *testing.T) {
	p := NewTextPanel(PanelCols, PanelRows)

	if p.Width() != 16 {
		t.Errorf("Width() = %d, expected 16", p.Width())
	}
	if p.Height() != 8 {
		t.Errorf("Height() = %d, expected 8", p.Height())
	}
	if len(p.Lines()) != 0 {
		t.Errorf("New panel should be blank, got %q", p.Lines())
	}
}

func TestTextPanelWriteNewlines(t *testing.T) {
	p := NewTextPanel(PanelCols, PanelRows)
	p.WriteText("GAME OVER\n")
	p.WriteText("Score: ")
	p.WriteText("12")

	lines := p.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "GAME OVER" {
		t.Errorf("Line 0 = %q, expected %q", lines[0], "GAME OVER")
	}
	if lines[1] != "Score: 12" {
		t.Errorf("Line 1 = %q, expected %q", lines[1], "Score: 12")
	}
}

func TestTextPanelWrapsAndClips(t *testing.T) {
	p := NewTextPanel(4, 2)
	p.WriteText("ABCDEFGHIJ")

	if p.Row(0) != "ABCD" {
		t.Errorf("Row(0) = %q, expected %q", p.Row(0), "ABCD")
	}
	if p.Row(1) != "EFGH" {
		t.Errorf("Row(1) = %q, expected %q", p.Row(1), "EFGH")
	}
	if strings.Contains(p.String(), "I") {
		t.Error("Text past the last row should be dropped")
	}
}

func TestTextPanelClearHomesCursor(t *testing.T) {
	p := NewTextPanel(PanelCols, PanelRows)
	p.WriteText("hello\nworld")
	p.Clear()

	row, col := p.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor after Clear = (%d, %d), expected (0, 0)", row, col)
	}
	if len(p.Lines()) != 0 {
		t.Errorf("Panel should be blank after Clear, got %q", p.Lines())
	}
}

func TestTextPanelSetCursor(t *testing.T) {
	p := NewTextPanel(PanelCols, PanelRows)

	if err := p.SetCursor(2, 3); err != nil {
		t.Fatalf("SetCursor(2, 3) failed: %v", err)
	}
	p.WriteText("X")
	if p.Row(2)[3] != 'X' {
		t.Errorf("Expected 'X' at (2, 3), row = %q", p.Row(2))
	}

	if err := p.SetCursor(8, 0); err == nil {
		t.Error("SetCursor outside the panel should fail")
	}
	if err := p.SetCursor(0, -1); err == nil {
		t.Error("SetCursor with negative column should fail")
	}
}

func TestTextPanelRowOutOfBounds(t *testing.T) {
	p := NewTextPanel(5, 2)
	if p.Row(-1) != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", p.Row(-1))
	}
}
