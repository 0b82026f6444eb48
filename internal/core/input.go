package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up / menu up
	ActionDown           // S, Down arrow - steer down / menu down
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionConfirm        // Enter, Space - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - return to menu after a finished session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - hold/unhold the simulation
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// It is a small value type; copies are independent.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < 32 {
		f.bits |= 1 << uint(a)
	}
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < 32 && f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear removes every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionUp; a < 32; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
