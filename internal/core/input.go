package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - menu up
	ActionDown            // S, Down arrow - menu down
	ActionAimLeft         // A, Left arrow - rotate aim counter-clockwise
	ActionAimRight        // D, Right arrow - rotate aim clockwise
	ActionFire            // Space, Enter, mouse click - fire the loaded sphere
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart the round
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P, Escape - pause/unpause game
	ActionMute            // M - toggle sound
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
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
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
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse position in screen cells.
// Moved is set only on the frame the position changed.
type Pointer struct {
	X, Y  int
	Valid bool // A position has been reported at least once
	Moved bool
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
	Pointer Pointer
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

// PointAt records a pointer position for this frame.
func (f *InputFrame) PointAt(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true, Moved: true}
}

// Clear resets all actions for the next frame.
// The pointer position is kept; only its Moved flag is reset.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
