// Package input translates tcell key events into semantic editor actions
// through a remappable key table.
package input

// Action is a semantic editor operation decoded from a key event
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionActivate
	ActionCycleMode
	ActionToggleColor
	ActionToggleFilled
	ActionClear
	ActionSave
	ActionExport
	ActionLoad
	ActionPrevFrame
	ActionNextFrame
	ActionNewFrame
	ActionTogglePlay
	ActionSpeedUp
	ActionSpeedDown
	ActionQuit
)

// ActionNames maps config identifiers to actions; used by the keymap
// loader to resolve TOML overrides
var ActionNames = map[string]Action{
	"none":          ActionNone,
	"move_left":     ActionMoveLeft,
	"move_right":    ActionMoveRight,
	"move_up":       ActionMoveUp,
	"move_down":     ActionMoveDown,
	"activate":      ActionActivate,
	"cycle_mode":    ActionCycleMode,
	"toggle_color":  ActionToggleColor,
	"toggle_filled": ActionToggleFilled,
	"clear":         ActionClear,
	"save":          ActionSave,
	"export":        ActionExport,
	"load":          ActionLoad,
	"prev_frame":    ActionPrevFrame,
	"next_frame":    ActionNextFrame,
	"new_frame":     ActionNewFrame,
	"toggle_play":   ActionTogglePlay,
	"speed_up":      ActionSpeedUp,
	"speed_down":    ActionSpeedDown,
	"quit":          ActionQuit,
}

// Delta returns the cursor movement for a move action, zero otherwise
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionMoveLeft:
		return -1, 0
	case ActionMoveRight:
		return 1, 0
	case ActionMoveUp:
		return 0, -1
	case ActionMoveDown:
		return 0, 1
	}
	return 0, 0
}
