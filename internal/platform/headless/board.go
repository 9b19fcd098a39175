package headless

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whackamole/internal/audio"
	"github.com/vovakirdan/whackamole/internal/core"
	"github.com/vovakirdan/whackamole/internal/mole"
	"github.com/vovakirdan/whackamole/internal/registry"
)

func init() {
	registry.Register("headless", func() registry.Board { return &Board{} })
}

// Board plays the configured number of games in real time with the autoplayer.
type Board struct{}

// ID returns the board identifier.
func (b *Board) ID() string { return "headless" }

// Title returns the display name.
func (b *Board) Title() string { return "Autoplay (log output)" }

// Play runs until headless.games games have finished or ctx is done.
func (b *Board) Play(ctx context.Context, opts registry.Options) (registry.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	buzzer, closeAudio := audio.Open(opts.Settings.Audio, logger)
	defer closeAudio()

	return play(ctx, core.NewSystemClock(), buzzer, opts, logger)
}

// Simulate plays games on a virtual clock, so they finish as fast as the CPU
// allows and the same seed always produces the same scores.
func Simulate(ctx context.Context, opts registry.Options) (registry.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return play(ctx, core.NewManualClock(0), audio.Silent{Logger: logger}, opts, logger)
}

func play(ctx context.Context, clock core.Clock, buzzer core.Buzzer, opts registry.Options, logger *log.Logger) (registry.Result, error) {
	cfg := opts.Settings.Headless
	bot := NewAutoplayer(clock, rand.New(rand.NewSource(opts.Seed+1)),
		cfg.ReactionMS, cfg.Accuracy, NewLogLights(logger))

	periph := mole.Peripherals{
		Clock:   clock,
		Keypad:  bot,
		Lights:  bot,
		Display: NewLogDisplay(logger),
		Buzzer:  buzzer,
	}
	engine := mole.New(periph, rand.New(rand.NewSource(opts.Seed)), logger)
	cabinet := mole.NewCabinet(engine, periph, logger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result registry.Result
	cabinet.OnGameOver = func(r mole.GameReport) {
		result.Games = append(result.Games, r)
		bot.Rest()
		if len(result.Games) >= cfg.Games {
			cancel()
		}
	}

	err := cabinet.Serve(runCtx)
	hits, misses := bot.Stats()
	logger.Debug("autoplayer done", "hits", hits, "misses", misses)

	if ctx.Err() != nil {
		return result, ctx.Err()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return result, err
	}
	return result, nil
}
