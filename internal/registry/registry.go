// Package registry maps variant IDs such as "breakout" and
// "breakout_classic" to constructors. The breakout package fills it
// from init, and the CLI looks variants up by the ID given on the
// command line.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the terminal front end drives: it feeds one InputFrame per
// tick and draws the result into a Screen. Implementations never import
// Bubble Tea.
type Game interface {
	// ID is the variant name accepted by "breakout play <id>".
	ID() string

	// Title is shown by "breakout list".
	Title() string

	// Reset loads config and spawns a fresh round with no last score.
	// The front end calls it once before the first Step. Restarts after a
	// round ends arrive through ActionRestart instead.
	Reset(cfg core.RuntimeConfig)

	// Resize changes the drawing area. The round keeps running.
	Resize(w, h int)

	// Step applies one frame of held actions and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the arena, HUD and any panel into dst.
	Render(dst *core.Screen)

	// State reports score, round over and pause for the front end.
	State() core.GameState
}

// GameInfo is one row of "breakout list".
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
