// Package registry keeps the playable game modes. Each difficulty preset
// registers itself from an init() function so the command line, the menu
// and the scoreboard discover modes without importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal or
// Bubble Tea types; the platform maps keys to actions and owns timing.
type Game interface {
	// ID identifies the mode, e.g. "cosmic/normal". Scores are stored under it.
	ID() string

	// Title is the display name, e.g. "Cosmic Heat (Normal)".
	Title() string

	// Reset starts a new session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the score and session flags.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game for one mode.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a mode. It panics when the ID is already taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{title: title, factory: f}
}

// List returns every registered mode sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for id, m := range modes {
		result = append(result, ModeInfo{ID: id, Title: m.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m.factory(), nil
}

// Title returns the display name of a mode, or the ID itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if m, ok := modes[id]; ok {
		return m.title
	}
	return id
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
