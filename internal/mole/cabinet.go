package mole

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/whackamole/internal/core"
)

// GameReport describes one finished session.
type GameReport struct {
	Session  string
	Score    uint32
	Rounds   int
	Duration core.Millis
}

// Cabinet is the power-on loop around the engine: splash, wait for a key,
// play, wait for a key, reset, play again.
type Cabinet struct {
	engine *Engine
	clock  core.Clock
	keypad core.Keypad
	logger *log.Logger

	// OnGameOver, when set, is called after every finished session.
	OnGameOver func(GameReport)
}

// NewCabinet wraps an engine built from the same peripherals.
func NewCabinet(engine *Engine, p Peripherals, logger *log.Logger) *Cabinet {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cabinet{
		engine: engine,
		clock:  p.Clock,
		keypad: p.Keypad,
		logger: logger,
	}
}

// Serve runs games until ctx is cancelled. A game in progress is abandoned
// at the next tick and reported to no one.
func (c *Cabinet) Serve(ctx context.Context) error {
	c.engine.ShowSplash()
	c.engine.ShowNewGame()
	if err := c.waitForKey(ctx); err != nil {
		return err
	}

	for {
		report, err := c.PlayOne(ctx)
		if err != nil {
			return err
		}
		if c.OnGameOver != nil {
			c.OnGameOver(report)
		}

		if err := c.waitForKey(ctx); err != nil {
			return err
		}
		c.engine.Reset()
	}
}

// PlayOne runs a single session from the current engine state. Every engine
// log line of the session carries its id. When ctx is done mid-game the
// partial report is returned with ctx.Err().
func (c *Cabinet) PlayOne(ctx context.Context) (GameReport, error) {
	session := uuid.NewString()
	logger := c.logger.With("session", session)
	c.engine.SetLogger(logger)
	defer c.engine.SetLogger(c.logger)
	start := c.clock.Now()

	logger.Info("game started")
	score, err := c.engine.RunContext(ctx)

	report := GameReport{
		Session:  session,
		Score:    score,
		Rounds:   c.engine.Round(),
		Duration: c.clock.Now().Since(start),
	}
	if err != nil {
		logger.Info("game abandoned",
			"score", report.Score,
			"round", report.Rounds,
			"moles", c.engine.Snapshot().ActiveSlots(),
			"error", err,
		)
		return report, err
	}

	logger.Info("game finished",
		"score", report.Score,
		"round", report.Rounds,
		"duration", report.Duration.Duration(),
	)
	return report, nil
}

// waitForKey blocks until any key is pressed or ctx is done.
// A press left over from the previous game is discarded first.
func (c *Cabinet) waitForKey(ctx context.Context) error {
	c.keypad.Poll()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, ok := c.keypad.Poll(); ok {
			return nil
		}
		c.clock.Sleep(ScanInterval)
	}
}
