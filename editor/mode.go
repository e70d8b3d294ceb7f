package editor

// Mode selects what Activate does at the cursor
type Mode uint8

const (
	ModePen Mode = iota
	ModeLine
	ModeRect
	ModeFill
	ModeAnim
)

// Next returns the following mode in the cycle
// pen -> line -> rect -> fill -> anim -> pen
func (m Mode) Next() Mode {
	if m == ModeAnim {
		return ModePen
	}
	return m + 1
}

func (m Mode) String() string {
	switch m {
	case ModePen:
		return "PEN"
	case ModeLine:
		return "LINE"
	case ModeRect:
		return "RECT"
	case ModeFill:
		return "FILL"
	case ModeAnim:
		return "ANIM"
	}
	return "?"
}
