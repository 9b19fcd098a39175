package mole

import "github.com/vovakirdan/whackamole/internal/core"

// ResolveEscapes clears every escaped slot and takes one life per escapee.
// Lives stop at zero; the caller ends the session there.
func (e *Engine) ResolveEscapes(now core.Millis) []int {
	var escaped []int
	for i := range e.slots {
		if e.Status(i, now) == StatusEscaped {
			escaped = append(escaped, i)
		}
	}
	if len(escaped) == 0 {
		return nil
	}

	for _, i := range escaped {
		e.deactivate(i)
	}

	if n := uint8(len(escaped)); n >= e.lives {
		e.lives = 0
	} else {
		e.lives -= n
	}

	e.beep(core.ToneEscape)
	e.logger.Debug("moles escaped", "slots", escaped, "lives", e.lives, "t", now)
	return escaped
}

// ResolveHit polls the keypad once and scores the key if it names an active slot.
// Unknown keys, idle polls and keys for empty or escaped slots do nothing.
func (e *Engine) ResolveHit(now core.Millis) (int, bool) {
	key, ok := e.keypad.Poll()
	if !ok {
		return -1, false
	}

	idx, ok := core.SlotForKey(key)
	if !ok {
		return -1, false
	}
	if e.Status(idx, now) != StatusActive {
		return -1, false
	}

	e.score++
	e.hitsThisRound++
	e.deactivate(idx)

	e.beep(core.ToneHit)
	e.logger.Debug("hit", "slot", idx, "score", e.score, "t", now)
	return idx, true
}

// beep plays a cue; buzzer failures never affect the game.
func (e *Engine) beep(t core.Tone) {
	if err := e.buzzer.Beep(t); err != nil {
		e.logger.Debug("buzzer failed", "tone", t, "error", err)
	}
}
