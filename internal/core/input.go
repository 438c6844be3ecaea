package core

// Action is a key press after the keymap has resolved it. Games see only
// actions, never raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Paddle left while held
	ActionRight          // Paddle right while held
	ActionRestart        // New round once the current one is over
	ActionPause          // Freeze a running round
	ActionQuit           // Handled by the front end; never reaches Step
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions active for one tick. Left and Right stay set
// for as long as the key is held; Restart and Pause are set for a single
// frame per press.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame returns a frame with no actions.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set adds a to the frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a is in the frame. The zero InputFrame has nothing.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear empties the frame in place.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns a frame that shares no map with f.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
