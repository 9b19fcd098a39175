package mole

import (
	"context"

	"github.com/vovakirdan/whackamole/internal/core"
)

// TickResult reports what happened during one engine tick.
type TickResult struct {
	Now      core.Millis
	Escaped  []int // slots cleared by escape resolution
	Hit      int   // slot scored this tick, -1 when none
	Spawned  int   // slot activated this tick, -1 when none
	Frame    bool  // whether a light frame was emitted
	GameOver bool  // lives ran out; nothing after escape resolution ran
}

// Tick runs one pass of the control loop with a single clock reading:
// banner, escapes, loss check, hit, spawn, frame. Escapes always clear a slot
// before the keypad is read, so a slot can never be both penalized and scored.
func (e *Engine) Tick() TickResult {
	now := e.clock.Now()
	res := TickResult{Now: now, Hit: -1, Spawned: -1}

	e.drawBanner()

	res.Escaped = e.ResolveEscapes(now)
	if e.lives == 0 {
		res.GameOver = true
		return res
	}

	if idx, ok := e.ResolveHit(now); ok {
		res.Hit = idx
	}
	if idx, ok := e.MaybeSpawn(now); ok {
		res.Spawned = idx
	}
	if frame, ok := e.RenderFrame(now); ok {
		e.writeFrame(frame)
		res.Frame = true
	}

	return res
}

// Run plays one session to the end and returns the final score.
// The inner loop is a round, finished by RoundQuota hits; the outer loop is the
// session, finished only when lives reach zero.
func (e *Engine) Run() uint32 {
	score, _ := e.RunContext(context.Background())
	return score
}

// RunContext is Run with a way out: ctx is checked before every tick, and when
// it is done the session stops where it is, without the end sequence, and
// ctx.Err() is returned with the score so far.
func (e *Engine) RunContext(ctx context.Context) (uint32, error) {
	e.PlayStartSequence()
	e.spawnTimer = e.clock.Now()
	e.logger.Info("session started", "round", e.round, "lives", e.lives)

	for {
		for e.hitsThisRound < RoundQuota {
			if err := ctx.Err(); err != nil {
				return e.score, err
			}
			if res := e.Tick(); res.GameOver {
				e.logger.Info("session over", "score", e.score, "round", e.round)
				e.PlayEndSequence()
				return e.score, nil
			}
			e.clock.Sleep(ScanInterval)
		}
		e.completeRound()
	}
}

// completeRound resets the round's hit count, speeds up the game and grants a bonus life.
func (e *Engine) completeRound() {
	e.hitsThisRound = 0
	e.spawnInterval = core.Millis(float64(e.spawnInterval) * SpawnSpeedChange)
	e.escapeWindow = core.Millis(float64(e.escapeWindow) * EscapeSpeedChange)
	if e.lives < maxLives {
		e.lives++
	}
	e.round++

	e.beep(core.ToneRoundUp)
	e.logger.Info("round complete",
		"round", e.round,
		"spawn_interval_ms", e.spawnInterval,
		"escape_window_ms", e.escapeWindow,
		"lives", e.lives,
	)
}
