// Package core provides the collaborator contracts and value types shared by the
// engine and the cabinets. It has no terminal or audio dependencies so the engine
// stays testable without hardware.
package core

// Grid dimensions of the cabinet.
const (
	GridSize  = 3
	SlotCount = GridSize * GridSize
)

// Position is a row/column location on the 3x3 grid.
type Position struct {
	Row, Col int
}

// SlotPosition returns the grid position of a slot index.
func SlotPosition(idx int) Position {
	return Position{Row: idx / GridSize, Col: idx % GridSize}
}

// SlotAt returns the slot index at (row, col), or -1 when outside the grid.
func SlotAt(row, col int) int {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return -1
	}
	return row*GridSize + col
}

// SlotForKey maps keypad digits '0'..'8' to slot indices.
// Every other key, including '9', is not a slot.
func SlotForKey(key rune) (int, bool) {
	if key < '0' || key > '8' {
		return 0, false
	}
	return int(key - '0'), true
}

// KeyForSlot is the inverse of SlotForKey.
func KeyForSlot(idx int) rune {
	return rune('0' + idx)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
