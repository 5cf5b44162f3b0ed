package input

import (
	"sort"
	"strconv"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveRight
	ActionMoveDown
	ActionMoveLeft

	// Numbered context action (Intent.Index holds the number)
	ActionSelect

	// Meta / UI
	ActionRestart
	ActionQuit
	ActionConfirm
	ActionContinue
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
	Index  int
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"up":          ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_right": ActionMoveRight,
	"right":       ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_down":  ActionMoveDown,
	"down":        ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"left":        ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,

	"r": ActionRestart,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,

	"y":   ActionConfirm,
	"yes": ActionConfirm,

	"enter": ActionContinue,
}

// MapToIntent applies the bindings to a raw code. Codes made of digits map to
// ActionSelect with the parsed number.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	if n, ok := parseIndex(code); ok {
		return Intent{Action: ActionSelect, Index: n}
	}
	return Intent{Action: ActionNone}
}

// parseIndex accepts non-empty all-digit codes only, so "-1" or "+2" are not
// treated as selections.
func parseIndex(code string) (int, bool) {
	if code == "" {
		return 0, false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionContinue:
		return "Continue"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
