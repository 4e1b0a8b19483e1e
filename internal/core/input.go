package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionRestart        // Enter - play again after game over
	ActionQuit           // Q, Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held down during one poll.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	for _, held := range f.Actions {
		if held {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
