package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions. Special keys (arrows, Enter, Esc) and
// printable runes live in separate maps because tcell reports them
// through different event fields.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Action
	Runes       map[rune]Action
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyEnter:  ActionTogglePlay,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionMoveUp,
			'j': ActionMoveDown,
			' ': ActionActivate,
			'm': ActionCycleMode,
			'c': ActionToggleColor,
			'f': ActionToggleFilled,
			'x': ActionClear,
			's': ActionSave,
			'e': ActionExport,
			'o': ActionLoad,
			'p': ActionPrevFrame,
			'n': ActionNextFrame,
			'a': ActionNewFrame,
			'+': ActionSpeedUp,
			'-': ActionSpeedDown,
			'q': ActionQuit,
		},
	}
}

// Merge overlays sparse overrides onto the table. Only keys present in
// the override are replaced.
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.SpecialKeys {
		kt.SpecialKeys[k] = a
	}
	for r, a := range override.Runes {
		kt.Runes[r] = a
	}
}

// Decode resolves a tcell key event to an action, ActionNone when unbound
func (kt *KeyTable) Decode(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
