package core

// Action represents a semantic game action, abstracted from physical key presses.
// The set is closed: anything the keymap does not recognize becomes ActionNone.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow - sail north
	ActionDown            // Down arrow - sail south
	ActionLeft            // Left arrow - sail west
	ActionRight           // Right arrow - sail east
	ActionInteract        // P - put into port at a nearby island
	ActionJournal         // J - open the journal
	ActionConfirm         // Enter - dismiss a screen
	ActionCancel          // Escape - quit prompt / go back
	ActionQuit            // Ctrl+C - leave immediately
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
	case ActionInteract:
		return "Interact"
	case ActionJournal:
		return "Journal"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four arrow directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
