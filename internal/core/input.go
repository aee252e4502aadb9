package core

// Action represents a semantic game action, abstracted from physical key presses.
// The front end maps keys to actions; the game only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Move the placement cursor left
	ActionRight            // Move the placement cursor right
	ActionUp               // Move the placement cursor up (toward the top row)
	ActionDown             // Move the placement cursor down
	ActionNextPiece        // Select the next pending slot
	ActionPrevPiece        // Select the previous pending slot
	ActionSlot1            // Select slot 1 directly
	ActionSlot2            // Select slot 2 directly
	ActionSlot3            // Select slot 3 directly
	ActionSlot4            // Select slot 4 directly
	ActionPlace            // Place the selected piece at the cursor
	ActionRestart          // Start a new game after game over
	ActionPause            // Pause/unpause
	ActionQuit             // Exit the program
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionNextPiece:
		return "NextPiece"
	case ActionPrevPiece:
		return "PrevPiece"
	case ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4:
		return "Slot" + string(rune('1'+int(a-ActionSlot1)))
	case ActionPlace:
		return "Place"
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

// SlotIndex returns the zero-based slot selected by a direct slot action.
func (a Action) SlotIndex() (int, bool) {
	if a >= ActionSlot1 && a <= ActionSlot4 {
		return int(a - ActionSlot1), true
	}
	return 0, false
}

// InputFrame represents the actions triggered during one front-end frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
