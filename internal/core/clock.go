package core

import (
	"sync"
	"time"
)

// Millis is engine time in milliseconds since the clock started.
type Millis uint64

// Since returns now-then, or 0 when then lies in the future.
func (now Millis) Since(then Millis) Millis {
	if now < then {
		return 0
	}
	return now - then
}

// Duration converts to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// Clock is the timer source. Now must be monotonic and never fail.
// Sleep blocks the caller; animations and idle polling use it.
type Clock interface {
	Now() Millis
	Sleep(d Millis)
}

// SystemClock measures wall time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns milliseconds since creation.
func (c *SystemClock) Now() Millis {
	return Millis(time.Since(c.start).Milliseconds())
}

// Sleep blocks for d milliseconds.
func (c *SystemClock) Sleep(d Millis) {
	time.Sleep(d.Duration())
}

// ManualClock is a virtual clock that only moves when told to.
// Sleep advances it instead of blocking, so simulated games finish instantly.
type ManualClock struct {
	mu  sync.Mutex
	now Millis
}

// NewManualClock creates a virtual clock at the given time.
func NewManualClock(start Millis) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current virtual time.
func (c *ManualClock) Now() Millis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d Millis) {
	c.Advance(d)
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d Millis) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// Set jumps to an absolute time. Moving backwards is ignored to keep the clock monotonic.
func (c *ManualClock) Set(t Millis) {
	c.mu.Lock()
	if t > c.now {
		c.now = t
	}
	c.mu.Unlock()
}
