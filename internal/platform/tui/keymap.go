package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last press.
// Terminals report key repeats but never releases; the window bridges the gap
// between the first press and the start of auto-repeat.
const HoldWindow = 150 * time.Millisecond

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// HeldKeys turns discrete key presses into per-tick input frames.
// Movement stays held for HoldWindow after each press; every other action is
// delivered to exactly one frame.
type HeldKeys struct {
	until   map[core.Action]time.Time
	pending core.InputFrame
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		until:   make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft, core.ActionRight:
		h.until[a] = now.Add(HoldWindow)
		// Reversing direction releases the other key at once.
		if a == core.ActionLeft {
			delete(h.until, core.ActionRight)
		} else {
			delete(h.until, core.ActionLeft)
		}
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for a tick at time now and consumes one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// Release drops every held key, e.g. when the game loses focus.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pending.Clear()
}
