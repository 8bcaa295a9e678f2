package core

// Action represents a semantic game command, abstracted from physical key
// presses. The platform maps keys to actions; the session consumes actions
// without knowing the input source.
type Action int

const (
	ActionNone             Action = iota
	ActionUp                      // steer the snake up
	ActionDown                    // steer the snake down
	ActionLeft                    // steer the snake left
	ActionRight                   // steer the snake right
	ActionStart                   // start a round from the menu
	ActionPause                   // suspend a running round
	ActionResume                  // resume a paused round
	ActionRestart                 // restart after game over
	ActionBack                    // return to the menu
	ActionQuit                    // leave the program
	ActionToggleDifficulty        // cycle EASY -> NORMAL -> HARD
	ActionToggleWrap              // toggle wrap-around edges
	ActionToggleMaze              // toggle obstacle maze
	ActionToggleSound             // toggle audio blips
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
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionToggleDifficulty:
		return "ToggleDifficulty"
	case ActionToggleWrap:
		return "ToggleWrap"
	case ActionToggleMaze:
		return "ToggleMaze"
	case ActionToggleSound:
		return "ToggleSound"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one real-time tick.
// The session drains one frame per tick, never more.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
