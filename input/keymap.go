package input

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Aliases for keys that cannot appear as bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// Names for non-printable keys
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+s": tcell.KeyCtrlS,
	"ctrl+e": tcell.KeyCtrlE,
	"ctrl+o": tcell.KeyCtrlO,
}

type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeymap parses a TOML keymap into a sparse override table. Only
// bindings present in the data are populated; unknown key or action
// names are errors.
func LoadKeymap(data []byte) (*KeyTable, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return KeymapFromNames(file.Keys)
}

// KeymapFromNames builds a sparse override table from key-name to
// action-name pairs, as found in a config file's [keys] section
func KeymapFromNames(names map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyName, actionName := range names {
		action, ok := ActionNames[actionName]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for key %q", actionName, keyName)
		}

		if key, ok := specialKeyNames[keyName]; ok {
			kt.SpecialKeys[key] = action
			continue
		}
		if r, ok := runeAliases[keyName]; ok {
			kt.Runes[r] = action
			continue
		}
		runes := []rune(keyName)
		if len(runes) != 1 {
			return nil, fmt.Errorf("keymap: unknown key name %q", keyName)
		}
		kt.Runes[runes[0]] = action
	}
	return kt, nil
}
