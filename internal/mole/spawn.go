package mole

import "github.com/vovakirdan/whackamole/internal/core"

// MaybeSpawn activates a mole in a random inactive slot once the spawn interval
// has passed. The spawn timer restarts even when the grid is full, so a full
// grid is retried at the normal cadence instead of every tick.
func (e *Engine) MaybeSpawn(now core.Millis) (int, bool) {
	if now.Since(e.spawnTimer) <= e.spawnInterval {
		return -1, false
	}
	e.spawnTimer = now

	candidates := e.inactiveSlots(now)
	if len(candidates) == 0 {
		e.logger.Debug("spawn skipped, grid full", "t", now)
		return -1, false
	}

	idx := candidates[e.rng.Intn(len(candidates))]
	e.activate(idx, now)
	e.logger.Debug("mole up", "slot", idx, "t", now)
	return idx, true
}

// inactiveSlots lists the slots that can take a new mole.
func (e *Engine) inactiveSlots(now core.Millis) []int {
	candidates := make([]int, 0, core.SlotCount)
	for i := range e.slots {
		if e.Status(i, now) == StatusInactive {
			candidates = append(candidates, i)
		}
	}
	return candidates
}
