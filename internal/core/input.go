package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - steer left
	ActionRight          // Right arrow - steer right
	ActionStart          // Space - start or restart a round
	ActionUp             // Up arrow, k - menu navigation
	ActionDown           // Down arrow, j - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - close dropdown / go back
	ActionRestart        // R key - retry (updates panel)
	ActionQuit           // Q, Ctrl+C - exit
	ActionTheme          // T key - open theme dropdown
	ActionTab            // Tab - next tab
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
	case ActionStart:
		return "Start"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionTheme:
		return "Theme"
	case ActionTab:
		return "Tab"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
// Discrete key presses are kept in arrival order because two Left presses
// in one frame must move the player twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
