package mole

import (
	"errors"

	"github.com/vovakirdan/whackamole/internal/core"
)

// fixedRand returns scripted values (modulo n), cycling through them.
type fixedRand struct {
	values []int
	calls  int
}

func (r *fixedRand) Intn(n int) int {
	v := 0
	if len(r.values) > 0 {
		v = r.values[r.calls%len(r.values)]
	}
	r.calls++
	return v % n
}

// recordingLights keeps every frame written to it.
type recordingLights struct {
	frames []core.Frame
	err    error
}

func (l *recordingLights) Write(f core.Frame) error {
	if l.err != nil {
		return l.err
	}
	l.frames = append(l.frames, f)
	return nil
}

func (l *recordingLights) last() core.Frame {
	if len(l.frames) == 0 {
		return core.Frame{}
	}
	return l.frames[len(l.frames)-1]
}

// countingDisplay wraps a panel and counts clears.
type countingDisplay struct {
	*core.TextPanel
	clears int
	fail   bool
}

func (d *countingDisplay) Clear() error {
	d.clears++
	if d.fail {
		return errors.New("i2c nack")
	}
	return d.TextPanel.Clear()
}

// recordingBuzzer keeps the tones it was asked to play.
type recordingBuzzer struct {
	tones []core.Tone
}

func (b *recordingBuzzer) Beep(t core.Tone) error {
	b.tones = append(b.tones, t)
	return nil
}

// botKeypad presses the first active slot it sees until its budget runs out.
type botKeypad struct {
	engine *Engine
	clock  core.Clock
	budget int
}

func (b *botKeypad) Poll() (rune, bool) {
	if b.budget == 0 || b.engine == nil {
		return 0, false
	}
	now := b.clock.Now()
	for i := 0; i < core.SlotCount; i++ {
		if b.engine.Status(i, now) == StatusActive {
			b.budget--
			return core.KeyForSlot(i), true
		}
	}
	return 0, false
}

// rig is an engine wired to in-memory peripherals.
type rig struct {
	clock   *core.ManualClock
	keys    *core.KeyLatch
	lights  *recordingLights
	display *countingDisplay
	buzzer  *recordingBuzzer
	engine  *Engine
}

func newRig(rng Rand) *rig {
	r := &rig{
		clock:   core.NewManualClock(0),
		keys:    core.NewKeyLatch(),
		lights:  &recordingLights{},
		display: &countingDisplay{TextPanel: core.NewTextPanel(core.PanelCols, core.PanelRows)},
		buzzer:  &recordingBuzzer{},
	}
	if rng == nil {
		rng = &fixedRand{}
	}
	r.engine = New(r.peripherals(), rng, nil)
	return r
}

func (r *rig) peripherals() Peripherals {
	return Peripherals{
		Clock:   r.clock,
		Keypad:  r.keys,
		Lights:  r.lights,
		Display: r.display,
		Buzzer:  r.buzzer,
	}
}
