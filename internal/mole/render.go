package mole

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/whackamole/internal/core"
)

// Gradient interpolates between two colors in RGB space.
type Gradient struct {
	from colorful.Color
	to   colorful.Color
}

// NewGradient creates a two-stop gradient.
func NewGradient(from, to core.RGB) Gradient {
	return Gradient{from: toColorful(from), to: toColorful(to)}
}

// MoleGradient runs from html green (#008000) for a fresh mole to red for one about to escape.
func MoleGradient() Gradient {
	return NewGradient(core.RGB{G: 128}, core.Red)
}

// At returns the color at position t, clamped to [0, 1].
func (g Gradient) At(t float64) core.RGB {
	t = core.ClampF(t, 0, 1)
	r, gr, b := g.from.BlendRgb(g.to, t).Clamped().RGB255()
	return core.RGB{R: r, G: gr, B: b}
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RenderFrame computes the light frame when one is due. Frames are spaced at
// least FrameInterval apart; between them it returns false and changes nothing.
func (e *Engine) RenderFrame(now core.Millis) (core.Frame, bool) {
	var frame core.Frame
	if now.Since(e.lastFrame) < FrameInterval {
		return frame, false
	}

	for i := range e.slots {
		if e.Status(i, now) != StatusActive {
			frame[i] = core.Black
			continue
		}
		progress := 1.0
		if e.escapeWindow > 0 {
			progress = float64(now.Since(e.slots[i].activatedAt)) / float64(e.escapeWindow)
		}
		frame[i] = e.gradient.At(progress)
	}

	e.lastFrame = now
	return frame, true
}

// writeFrame hands a frame to the light sink. A failed write drops the frame only.
func (e *Engine) writeFrame(frame core.Frame) {
	if err := e.lights.Write(frame); err != nil {
		e.logger.Warn("light frame dropped", "error", err)
	}
}
