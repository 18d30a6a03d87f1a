package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move the cursor up
	ActionDown           // move the cursor down
	ActionLeft           // move the cursor left
	ActionRight          // move the cursor right
	ActionSelect         // activate a source, pick up or drop a tile
	ActionCancel         // put a carried tile back
	ActionRestart        // fetch a fresh puzzle
	ActionQuit           // leave the game
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
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
