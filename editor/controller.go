// Package editor holds the interaction controller: the edit mode state
// machine, in-progress gestures, and the glue between the live grid, the
// animation reel, and the codec.
package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/pixelpen/anim"
	"github.com/lixenwraith/pixelpen/codec"
	"github.com/lixenwraith/pixelpen/draw"
	"github.com/lixenwraith/pixelpen/raster"
)

// Status message severity
type StatusKind uint8

const (
	StatusInfo StatusKind = iota
	StatusOK
	StatusError
)

const statusTTL = 3 * time.Second

// Controller owns the live grid being edited and routes high-level
// events from the input layer into the drawing primitives and the reel.
type Controller struct {
	live *raster.Grid
	reel *anim.Reel

	cursorX int
	cursorY int

	mode       Mode
	color      raster.Pixel
	filledRect bool

	// Pending gesture: first point of a two-step line/rect
	anchorSet bool
	anchorX   int
	anchorY   int

	statusMsg   string
	statusKind  StatusKind
	statusUntil time.Time
}

// New creates a controller editing a blank width x height grid
func New(width, height int) (*Controller, error) {
	g, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Controller{
		live:  g,
		reel:  anim.NewReel(g),
		color: raster.On,
	}, nil
}

// Grid returns the live grid for rendering
func (c *Controller) Grid() *raster.Grid {
	return c.live
}

// Reel returns the animation reel for status display
func (c *Controller) Reel() *anim.Reel {
	return c.reel
}

// Cursor returns the current cursor position
func (c *Controller) Cursor() (int, int) {
	return c.cursorX, c.cursorY
}

// Mode returns the active edit mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Color returns the active draw color
func (c *Controller) Color() raster.Pixel {
	return c.color
}

// FilledRect reports whether rectangles are drawn filled
func (c *Controller) FilledRect() bool {
	return c.filledRect
}

// Anchor returns the pending gesture point, if one is set
func (c *Controller) Anchor() (x, y int, ok bool) {
	return c.anchorX, c.anchorY, c.anchorSet
}

// Status returns the current status message, empty once expired
func (c *Controller) Status() (string, StatusKind) {
	if time.Now().After(c.statusUntil) {
		return "", StatusInfo
	}
	return c.statusMsg, c.statusKind
}

func (c *Controller) setStatus(msg string, kind StatusKind) {
	c.statusMsg = msg
	c.statusKind = kind
	c.statusUntil = time.Now().Add(statusTTL)
}

// Move shifts the cursor, clamped to the grid
func (c *Controller) Move(dx, dy int) {
	c.cursorX = clamp(c.cursorX+dx, 0, c.live.Width()-1)
	c.cursorY = clamp(c.cursorY+dy, 0, c.live.Height()-1)
}

// Activate performs the mode-dependent action at the cursor: draw a
// pixel, place or complete a line/rect anchor, or flood fill.
func (c *Controller) Activate() {
	switch c.mode {
	case ModePen, ModeAnim:
		c.live.Set(c.cursorX, c.cursorY, c.color)

	case ModeLine:
		if !c.anchorSet {
			c.setAnchor()
			return
		}
		draw.Line(c.live, c.anchorX, c.anchorY, c.cursorX, c.cursorY, c.color)
		c.anchorSet = false

	case ModeRect:
		if !c.anchorSet {
			c.setAnchor()
			return
		}
		x := min(c.anchorX, c.cursorX)
		y := min(c.anchorY, c.cursorY)
		w := abs(c.cursorX-c.anchorX) + 1
		h := abs(c.cursorY-c.anchorY) + 1
		draw.Rect(c.live, x, y, w, h, c.color, c.filledRect)
		c.anchorSet = false

	case ModeFill:
		draw.FloodFill(c.live, c.cursorX, c.cursorY, c.color)
	}
}

func (c *Controller) setAnchor() {
	c.anchorX = c.cursorX
	c.anchorY = c.cursorY
	c.anchorSet = true
	c.setStatus("Anchor set", StatusInfo)
}

// CycleMode advances to the next edit mode and drops any pending gesture
func (c *Controller) CycleMode() {
	c.mode = c.mode.Next()
	c.anchorSet = false
	c.setStatus(fmt.Sprintf("Mode: %s", c.mode), StatusInfo)
}

// ToggleColor flips the draw color between On and Off
func (c *Controller) ToggleColor() {
	c.color = c.color.Toggle()
}

// ToggleFilledRect flips between stroked and filled rectangles
func (c *Controller) ToggleFilledRect() {
	c.filledRect = !c.filledRect
	if c.filledRect {
		c.setStatus("Filled rectangles", StatusInfo)
	} else {
		c.setStatus("Outline rectangles", StatusInfo)
	}
}

// ClearGrid wipes the live grid
func (c *Controller) ClearGrid() {
	c.live.Clear()
	c.setStatus("Cleared", StatusOK)
}

// Save writes the live grid to path in the text format. Failures become
// a status message; the in-memory state is unaffected.
func (c *Controller) Save(path string) {
	if err := os.WriteFile(path, []byte(codec.EncodeText(c.live)), 0644); err != nil {
		c.setStatus(fmt.Sprintf("Save failed: %v", err), StatusError)
		return
	}
	c.setStatus(fmt.Sprintf("Saved %s", path), StatusOK)
}

// Export writes the packed C-array form to path: the whole animation
// when the reel has more than one frame, the live grid otherwise.
func (c *Controller) Export(path, symbol string) {
	var out string
	if c.reel.Len() > 1 {
		out = codec.ExportFrames(c.reel.Snapshot(c.live), symbol)
	} else {
		out = codec.ExportGrid(c.live, symbol)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		c.setStatus(fmt.Sprintf("Export failed: %v", err), StatusError)
		return
	}
	c.setStatus(fmt.Sprintf("Exported %s", path), StatusOK)
}

// Load replaces the session with the grid stored at path. On any
// failure the current grid and reel are left untouched.
func (c *Controller) Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.setStatus(fmt.Sprintf("Load failed: %v", err), StatusError)
		return
	}
	g, err := codec.DecodeText(string(data))
	if err != nil {
		c.setStatus(fmt.Sprintf("Load failed: %v", err), StatusError)
		return
	}

	c.live = g
	c.reel = anim.NewReel(g)
	c.anchorSet = false
	c.cursorX = clamp(c.cursorX, 0, g.Width()-1)
	c.cursorY = clamp(c.cursorY, 0, g.Height()-1)
	c.setStatus(fmt.Sprintf("Loaded %s", path), StatusOK)
}

// NewFrame appends a blank frame after committing the live grid
func (c *Controller) NewFrame() {
	next := c.reel.NewFrame(c.live)
	if next == nil {
		c.setStatus(fmt.Sprintf("Frame limit reached (%d)", anim.MaxFrames), StatusError)
		return
	}
	c.live = next
	c.setStatus(fmt.Sprintf("Frame %d/%d", c.reel.Current()+1, c.reel.Len()), StatusInfo)
}

// PrevFrame steps back one frame, committing edits first
func (c *Controller) PrevFrame() {
	if next := c.reel.Prev(c.live); next != nil {
		c.live = next
		c.setStatus(fmt.Sprintf("Frame %d/%d", c.reel.Current()+1, c.reel.Len()), StatusInfo)
	}
}

// NextFrame steps forward one frame, committing edits first
func (c *Controller) NextFrame() {
	if next := c.reel.Next(c.live); next != nil {
		c.live = next
		c.setStatus(fmt.Sprintf("Frame %d/%d", c.reel.Current()+1, c.reel.Len()), StatusInfo)
	}
}

// TogglePlay starts or stops playback
func (c *Controller) TogglePlay() {
	c.reel.TogglePlay()
}

// AdjustSpeed shifts the playback delay by delta
func (c *Controller) AdjustSpeed(delta time.Duration) {
	c.reel.AdjustSpeed(delta)
	c.setStatus(fmt.Sprintf("Delay %dms", c.reel.Delay().Milliseconds()), StatusInfo)
}

// PlaybackTick advances playback one frame; driven by the outer loop
// once the configured delay has elapsed
func (c *Controller) PlaybackTick() {
	if next := c.reel.Tick(c.live); next != nil {
		c.live = next
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
