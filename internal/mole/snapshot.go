package mole

import "github.com/vovakirdan/whackamole/internal/core"

// SlotSnapshot is the stored timer of one slot.
type SlotSnapshot struct {
	Active      bool
	ActivatedAt core.Millis
}

// Snapshot captures the complete session state for determinism testing and logging.
type Snapshot struct {
	Score         uint32
	HitsThisRound int
	Lives         uint8
	Round         int
	SpawnInterval core.Millis
	EscapeWindow  core.Millis
	SpawnTimer    core.Millis
	LastFrame     core.Millis
	Slots         [core.SlotCount]SlotSnapshot
}

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Score:         e.score,
		HitsThisRound: e.hitsThisRound,
		Lives:         e.lives,
		Round:         e.round,
		SpawnInterval: e.spawnInterval,
		EscapeWindow:  e.escapeWindow,
		SpawnTimer:    e.spawnTimer,
		LastFrame:     e.lastFrame,
	}
	for i, s := range e.slots {
		snap.Slots[i] = SlotSnapshot{Active: s.active, ActivatedAt: s.activatedAt}
	}
	return snap
}

// ActiveSlots returns the indices of slots holding a mole, escaped or not.
func (s Snapshot) ActiveSlots() []int {
	var active []int
	for i, slot := range s.Slots {
		if slot.Active {
			active = append(active, i)
		}
	}
	return active
}
