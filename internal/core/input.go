package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw keys
// and mouse buttons.
type Action int

const (
	ActionNone      Action = iota
	ActionPrimary          // Left mouse button, Enter/Space on a cell
	ActionSecondary        // Right mouse button, X/Backspace - cancel selection
	ActionStart            // Enter/Space on the start screen
	ActionSelect           // Enter/Space on the board - primary at the keyboard cursor
	ActionRestart          // R key - shuffle a new board
	ActionQuit             // Q, Ctrl+C - exit
	ActionUp               // Keyboard cursor up
	ActionDown             // Keyboard cursor down
	ActionLeft             // Keyboard cursor left
	ActionRight            // Keyboard cursor right
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionStart:
		return "Start"
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and the
// most recent pointer position, if any pointer event arrived.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	pointer    Vec2
	hasPointer bool
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

// SetPointer records an absolute pointer position in board space.
func (f *InputFrame) SetPointer(p Vec2) {
	f.pointer = p
	f.hasPointer = true
}

// Pointer returns the pointer position carried by this frame.
// The boolean is false if no pointer event arrived.
func (f InputFrame) Pointer() (Vec2, bool) {
	return f.pointer, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointer = Vec2{}
	f.hasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.pointer = f.pointer
	clone.hasPointer = f.hasPointer
	return clone
}
