package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - cursor/menu up
	ActionDown           // S, J, Down arrow - cursor/menu down
	ActionLeft           // A, H, Left arrow - cursor left
	ActionRight          // D, L, Right arrow - cursor right
	ActionConfirm        // Enter, Space - pick tile under cursor / choose menu item
	ActionQuit           // Q, Ctrl+C, window close
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two ticks.
// Actions are level-style flags; Clicks keep every primary click in arrival
// order so none is lost when several land within one frame.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a primary click at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing was recorded this frame.
func (f InputFrame) Empty() bool {
	return len(f.Clicks) == 0 && len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
