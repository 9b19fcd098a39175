// Package mole implements the whack-a-mole engine: nine independently timed
// slots, spawn scheduling, hit and escape resolution, round progression and a
// frame-capped light renderer. It talks to the cabinet only through the
// collaborator interfaces in package core and runs on a single goroutine.
package mole

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whackamole/internal/core"
)

// Status is the derived state of a slot at a given time.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusEscaped
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "Inactive"
	case StatusActive:
		return "Active"
	case StatusEscaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// Rand is the randomness source for spawn placement. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Peripherals bundles the cabinet collaborators the engine borrows each tick.
// Buzzer is optional.
type Peripherals struct {
	Clock   core.Clock
	Keypad  core.Keypad
	Lights  core.LightSink
	Display core.Display
	Buzzer  core.Buzzer
}

// slot holds one mole timer. Activation at t=0 is valid, so activity is a separate flag.
type slot struct {
	active      bool
	activatedAt core.Millis
}

// banner is the content of the in-game status screen, cached to avoid redundant redraws.
type banner struct {
	round int
	score uint32
	lives uint8
}

// Engine owns the slot array and session state. It is not safe for concurrent use.
type Engine struct {
	clock   core.Clock
	keypad  core.Keypad
	lights  core.LightSink
	display core.Display
	buzzer  core.Buzzer
	rng     Rand
	logger  *log.Logger

	slots         [core.SlotCount]slot
	score         uint32
	hitsThisRound int
	lives         uint8
	round         int
	spawnInterval core.Millis
	escapeWindow  core.Millis
	spawnTimer    core.Millis
	lastFrame     core.Millis

	gradient    Gradient
	shownBanner *banner
}

// New creates an engine in its default state. A nil logger discards output.
func New(p Peripherals, rng Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	buzzer := p.Buzzer
	if buzzer == nil {
		buzzer = silentBuzzer{}
	}

	e := &Engine{
		clock:    p.Clock,
		keypad:   p.Keypad,
		lights:   p.Lights,
		display:  p.Display,
		buzzer:   buzzer,
		rng:      rng,
		logger:   logger,
		gradient: MoleGradient(),
	}
	e.Reset()
	return e
}

// SetLogger replaces the engine logger, e.g. with one carrying a session field.
// A nil logger discards output.
func (e *Engine) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e.logger = logger
}

// Reset restores every session value to its documented default.
// Run never calls it; a cabinet uses it to start another game.
func (e *Engine) Reset() {
	e.slots = [core.SlotCount]slot{}
	e.score = 0
	e.hitsThisRound = 0
	e.lives = StartingLives
	e.round = StartingRound
	e.spawnInterval = DefaultSpawnInterval
	e.escapeWindow = DefaultEscapeWindow
	e.spawnTimer = 0
	e.lastFrame = 0
	e.shownBanner = nil
}

// Status classifies slot idx at time now. It has no side effects.
func (e *Engine) Status(idx int, now core.Millis) Status {
	s := e.slots[idx]
	if !s.active {
		return StatusInactive
	}
	if now.Since(s.activatedAt) > e.escapeWindow {
		return StatusEscaped
	}
	return StatusActive
}

// activate starts a mole timer in slot idx.
func (e *Engine) activate(idx int, now core.Millis) {
	e.slots[idx] = slot{active: true, activatedAt: now}
}

// deactivate clears slot idx.
func (e *Engine) deactivate(idx int) {
	e.slots[idx] = slot{}
}

// Score returns the cumulative hits of the session.
func (e *Engine) Score() uint32 {
	return e.score
}

// Lives returns the remaining lives.
func (e *Engine) Lives() uint8 {
	return e.lives
}

// Round returns the current round number.
func (e *Engine) Round() int {
	return e.round
}

// GameOver reports whether the session has run out of lives.
func (e *Engine) GameOver() bool {
	return e.lives == 0
}

// silentBuzzer is used when the cabinet has no buzzer.
type silentBuzzer struct{}

func (silentBuzzer) Beep(core.Tone) error { return nil }
