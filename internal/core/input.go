package core

// Action represents a semantic lobby action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left, H, A - previous difficulty
	ActionRight          // Right, L, D - next difficulty
	ActionConfirm        // Enter, Space - click the focused button
	ActionPlay           // P - jump focus to the play button
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionPlay:
		return "Play"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
