package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whackamole/internal/audio"
	"github.com/vovakirdan/whackamole/internal/core"
	"github.com/vovakirdan/whackamole/internal/mole"
	"github.com/vovakirdan/whackamole/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Board { return &Board{} })
}

// Board is the interactive terminal cabinet.
type Board struct{}

// ID returns the board identifier.
func (b *Board) ID() string { return "tui" }

// Title returns the display name.
func (b *Board) Title() string { return "Terminal cabinet" }

// Play runs the cabinet until the player quits or ctx is done.
// A game still in progress when the program exits is abandoned.
func (b *Board) Play(ctx context.Context, opts registry.Options) (registry.Result, error) {
	latch := core.NewKeyLatch()
	model := NewModel(opts.Settings.TUI, latch)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	buzzer, closeAudio := audio.Open(opts.Settings.Audio, opts.Logger)
	defer closeAudio()

	periph := mole.Peripherals{
		Clock:   core.NewSystemClock(),
		Keypad:  latch,
		Lights:  NewLights(p),
		Display: NewPanel(p),
		Buzzer:  buzzer,
	}
	engine := mole.New(periph, rand.New(rand.NewSource(opts.Seed)), opts.Logger)
	cabinet := mole.NewCabinet(engine, periph, opts.Logger)

	var (
		mu    sync.Mutex
		games []mole.GameReport
	)
	cabinet.OnGameOver = func(r mole.GameReport) {
		mu.Lock()
		games = append(games, r)
		mu.Unlock()
		p.Send(GameOverMsg(r))
	}

	engineCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := cabinet.Serve(engineCtx); err != nil && !errors.Is(err, context.Canceled) {
			p.Send(EngineDoneMsg{Err: err})
		}
	}()

	final, err := p.Run()
	cancel()

	mu.Lock()
	result := registry.Result{Games: append([]mole.GameReport(nil), games...)}
	mu.Unlock()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return result, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return result, fmt.Errorf("tui: engine stopped: %w", m.Err())
	}
	return result, nil
}
