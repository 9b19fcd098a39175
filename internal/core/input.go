package core

import "sync"

// Keypad is the input source. Poll reports at most one pressed key per call and
// returns (0, false) when nothing is pressed. Idle is not an error.
type Keypad interface {
	Poll() (rune, bool)
}

// LightSink receives full-grid light updates.
type LightSink interface {
	Write(frame Frame) error
}

// Display is the small text screen on the cabinet.
type Display interface {
	Clear() error
	SetCursor(row, col int) error
	WriteText(s string) error
}

// Tone identifies a buzzer cue.
type Tone int

const (
	ToneHit Tone = iota
	ToneEscape
	ToneRoundUp
	ToneGameOver
)

// String returns a human-readable name for the tone.
func (t Tone) String() string {
	switch t {
	case ToneHit:
		return "Hit"
	case ToneEscape:
		return "Escape"
	case ToneRoundUp:
		return "RoundUp"
	case ToneGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Buzzer plays short cues. Implementations must not block for the length of the tone.
type Buzzer interface {
	Beep(t Tone) error
}

// KeyLatch is a one-slot keypad buffer. Press stores a key (the newest press wins)
// and Poll consumes it, which mirrors a matrix scan that sees one key at a time.
// Press may be called from another goroutine than Poll.
type KeyLatch struct {
	mu      sync.Mutex
	key     rune
	pending bool
}

// NewKeyLatch creates an empty latch.
func NewKeyLatch() *KeyLatch {
	return &KeyLatch{}
}

// Press records a key press.
func (l *KeyLatch) Press(key rune) {
	l.mu.Lock()
	l.key = key
	l.pending = true
	l.mu.Unlock()
}

// Poll returns the pending key, if any, and clears it.
func (l *KeyLatch) Poll() (rune, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.pending {
		return 0, false
	}
	l.pending = false
	return l.key, true
}
