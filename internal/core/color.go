package core

import "fmt"

// RGB is a single LED color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Predefined colors used by the cabinet animations.
var (
	Black  = RGB{0, 0, 0}
	Red    = RGB{255, 0, 0}
	Yellow = RGB{255, 255, 0}
	Green  = RGB{0, 255, 0}
)

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsBlack reports whether the LED is off.
func (c RGB) IsBlack() bool {
	return c == Black
}

// Frame is a full-grid light update. Sinks always receive all nine slots at once.
type Frame [SlotCount]RGB

// SolidFrame returns a frame with every slot set to c.
func SolidFrame(c RGB) Frame {
	var f Frame
	for i := range f {
		f[i] = c
	}
	return f
}

// Lit returns the indices of slots that are not black.
func (f Frame) Lit() []int {
	var lit []int
	for i, c := range f {
		if !c.IsBlack() {
			lit = append(lit, i)
		}
	}
	return lit
}
