package inspect

import "github.com/gdamore/tcell/v2"

// Action represents a user-requested inspector action.
type Action uint8

const (
	ActionNone Action = iota
	ActionNextWave
	ActionPrevWave
	ActionSkipForward
	ActionSkipBack
	ActionFirstWave
	ActionReroll
	ActionTurnLeft
	ActionTurnRight
	ActionQuit
)

// keyToAction maps a tcell key event to an inspector action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyRight:
		return ActionNextWave
	case tcell.KeyLeft:
		return ActionPrevWave
	case tcell.KeyPgDn:
		return ActionSkipForward
	case tcell.KeyPgUp:
		return ActionSkipBack
	case tcell.KeyHome:
		return ActionFirstWave
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'l', 'n', ' ':
		return ActionNextWave
	case 'h', 'p':
		return ActionPrevWave
	case 'L', 'N':
		return ActionSkipForward
	case 'H', 'P':
		return ActionSkipBack
	case 'g':
		return ActionFirstWave
	case 'r', 'R':
		return ActionReroll
	case 'a', 'A':
		return ActionTurnLeft
	case 'd', 'D':
		return ActionTurnRight
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
