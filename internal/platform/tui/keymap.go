package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeplus/internal/core"
	"github.com/vovakirdan/snakeplus/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings depend on the session state, since the same key steers the snake
// while running and toggles an option in the menu. Centralizing this keeps
// the bindings in one place and testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to an action for the given session state.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) Map(msg tea.KeyMsg, state game.State) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch state {
	case game.StateMenu:
		switch key {
		case "enter", " ":
			return core.ActionStart, false
		case "d":
			return core.ActionToggleDifficulty, false
		case "w":
			return core.ActionToggleWrap, false
		case "m":
			return core.ActionToggleMaze, false
		case "s":
			return core.ActionToggleSound, false
		}

	case game.StateRunning:
		switch key {
		case "up", "w", "k":
			return core.ActionUp, false
		case "down", "s", "j":
			return core.ActionDown, false
		case "left", "a", "h":
			return core.ActionLeft, false
		case "right", "d", "l":
			return core.ActionRight, false
		case "p", "esc":
			return core.ActionPause, false
		}

	case game.StatePaused:
		switch key {
		case "p", "enter", " ":
			return core.ActionResume, false
		case "esc", "b":
			return core.ActionBack, false
		}

	case game.StateGameOver:
		switch key {
		case "r", "enter", " ":
			return core.ActionRestart, false
		case "esc", "b":
			return core.ActionBack, false
		}
	}

	return core.ActionNone, false
}

// MapToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapToFrame(msg tea.KeyMsg, state game.State, frame *core.InputFrame) bool {
	action, isQuit := km.Map(msg, state)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
