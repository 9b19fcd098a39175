// Package headless runs the cabinet with no terminal: an autoplayer presses
// the keys and the lights and panel go to the log.
package headless

import (
	"math/rand"

	"github.com/vovakirdan/whackamole/internal/core"
)

// StartKey is what the autoplayer presses to leave a "hit a key" screen.
const StartKey = '#'

// fatigueStep is added to the reaction time after every press, so even a
// perfect bot eventually falls behind and a game always ends.
const fatigueStep core.Millis = 2

// Autoplayer is a keypad driven by the light frames it is shown. It presses the
// slot that has been lit the longest once its reaction time has passed, and
// misses with probability 1-accuracy. After every press it is busy for one
// reaction time.
//
// Write and Poll are called from the engine goroutine only.
type Autoplayer struct {
	clock    core.Clock
	rng      *rand.Rand
	next     core.LightSink
	reaction core.Millis
	accuracy float64

	lit        [core.SlotCount]bool
	litSince   [core.SlotCount]core.Millis
	lastChange core.Millis
	busyUntil  core.Millis
	presses    int
	hits       int
	misses     int
}

// NewAutoplayer creates a bot. next, if not nil, receives every frame after the bot has seen it.
func NewAutoplayer(clock core.Clock, rng *rand.Rand, reactionMS int, accuracy float64, next core.LightSink) *Autoplayer {
	return &Autoplayer{
		clock:    clock,
		rng:      rng,
		next:     next,
		reaction: core.Millis(max(reactionMS, 0)),
		accuracy: accuracy,
	}
}

// Write records which slots are lit and since when. Countdown and game over
// flashes light the whole grid in one signal color; those are not moles.
func (a *Autoplayer) Write(frame core.Frame) error {
	now := a.clock.Now()
	signal := isSignal(frame)
	for i, c := range frame {
		lit := !signal && !c.IsBlack()
		if lit && !a.lit[i] {
			a.litSince[i] = now
		}
		if lit != a.lit[i] {
			a.lastChange = now
		}
		a.lit[i] = lit
	}
	if a.next != nil {
		return a.next.Write(frame)
	}
	return nil
}

func isSignal(frame core.Frame) bool {
	if frame != core.SolidFrame(frame[0]) {
		return false
	}
	switch frame[0] {
	case core.Red, core.Yellow, core.Green:
		return true
	}
	return false
}

// Poll reports a key press when the bot decides to act.
func (a *Autoplayer) Poll() (rune, bool) {
	now := a.clock.Now()
	if now < a.busyUntil {
		return 0, false
	}
	reaction := a.reactionTime()

	target := -1
	anyLit := false
	for i := range a.lit {
		if !a.lit[i] {
			continue
		}
		anyLit = true
		if now.Since(a.litSince[i]) < reaction {
			continue
		}
		if target < 0 || a.litSince[i] < a.litSince[target] {
			target = i
		}
	}

	if target < 0 {
		if anyLit || now.Since(a.lastChange) < reaction {
			return 0, false
		}
		a.busyUntil = now + reaction
		return StartKey, true
	}

	a.presses++
	a.busyUntil = now + reaction
	if a.rng.Float64() < a.accuracy {
		a.hits++
		return core.KeyForSlot(target), true
	}

	// Missed: aim again at the same mole after another reaction.
	a.misses++
	a.litSince[target] = now
	return a.missKey(), true
}

// missKey picks an unlit slot, or the start key when every slot is lit.
func (a *Autoplayer) missKey() rune {
	var dark []int
	for i, lit := range a.lit {
		if !lit {
			dark = append(dark, i)
		}
	}
	if len(dark) == 0 {
		return StartKey
	}
	return core.KeyForSlot(dark[a.rng.Intn(len(dark))])
}

func (a *Autoplayer) reactionTime() core.Millis {
	return a.reaction + core.Millis(a.presses)*fatigueStep
}

// Rest clears fatigue between games.
func (a *Autoplayer) Rest() {
	a.presses = 0
}

// Stats returns how many aimed presses landed and missed.
func (a *Autoplayer) Stats() (hits, misses int) {
	return a.hits, a.misses
}
