// Package registry provides a global registry for cabinet boards.
// Boards register themselves in init() functions, allowing the CLI
// to discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whackamole/internal/config"
	"github.com/vovakirdan/whackamole/internal/mole"
)

// Board is a set of peripherals the engine can be wired to: a terminal
// cabinet, an autoplaying harness, a real device.
type Board interface {
	// ID returns a unique identifier used on the command line (e.g., "tui").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Play wires the engine to the board and runs it until ctx is done
	// or the board decides it has finished.
	Play(ctx context.Context, opts Options) (Result, error)
}

// Options are passed to a board when it is started.
type Options struct {
	Settings config.Settings
	Seed     int64 // resolved seed, never 0
	Logger   *log.Logger
}

// Result summarises what happened while a board was running.
type Result struct {
	Games []mole.GameReport
}

// Best returns the highest score played, or 0 if no game finished.
func (r Result) Best() uint32 {
	var best uint32
	for _, g := range r.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

// BoardInfo contains metadata about a registered board.
type BoardInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new board.
type Factory func() Board

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a board factory to the registry.
// Panics if a board with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: board %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered boards, sorted by ID.
func List() []BoardInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BoardInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BoardInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a board by its ID.
func Create(id string) (Board, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown board %q", id)
	}
	return f(), nil
}

// Exists checks if a board with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
