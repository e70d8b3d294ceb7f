package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/pixelpen/anim"
	"github.com/lixenwraith/pixelpen/raster"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(16, 8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestMoveClamps(t *testing.T) {
	c := newController(t)

	c.Move(-5, -5)
	if x, y := c.Cursor(); x != 0 || y != 0 {
		t.Errorf("Expected cursor at origin, got (%d, %d)", x, y)
	}

	c.Move(100, 100)
	if x, y := c.Cursor(); x != 15 || y != 7 {
		t.Errorf("Expected cursor clamped to (15, 7), got (%d, %d)", x, y)
	}
}

func TestPenDraws(t *testing.T) {
	c := newController(t)

	c.Move(3, 2)
	c.Activate()
	if c.Grid().Get(3, 2) != raster.On {
		t.Error("Expected pen to set the cursor pixel")
	}

	c.ToggleColor()
	c.Activate()
	if c.Grid().Get(3, 2) != raster.Off {
		t.Error("Expected toggled color to erase")
	}
}

func TestLineGesture(t *testing.T) {
	c := newController(t)
	c.CycleMode() // line

	if c.Mode() != ModeLine {
		t.Fatalf("Expected ModeLine, got %v", c.Mode())
	}

	c.Activate() // anchor at (0, 0)
	if _, _, ok := c.Anchor(); !ok {
		t.Fatal("Expected anchor after first activate")
	}

	c.Move(5, 0)
	c.Activate() // complete

	if _, _, ok := c.Anchor(); ok {
		t.Error("Expected anchor cleared after completion")
	}
	for x := 0; x <= 5; x++ {
		if c.Grid().Get(x, 0) != raster.On {
			t.Errorf("Expected line pixel at (%d, 0)", x)
		}
	}
}

func TestRectGesture(t *testing.T) {
	c := newController(t)
	c.CycleMode() // line
	c.CycleMode() // rect

	c.Move(1, 1)
	c.Activate()
	c.Move(4, 3) // cursor now (5, 4)
	c.Activate()

	// Outline of a 5x4 rect anchored at (1, 1)
	if got, want := c.Grid().Count(), 2*5+2*4-4; got != want {
		t.Errorf("Expected %d border pixels, got %d", want, got)
	}

	// Filled variant, drawn backwards (anchor below-right of cursor)
	c.ClearGrid()
	c.ToggleFilledRect()
	c.Activate() // anchor at (5, 4)
	c.Move(-4, -3)
	c.Activate()
	if got := c.Grid().Count(); got != 5*4 {
		t.Errorf("Expected %d filled pixels, got %d", 5*4, got)
	}
}

func TestModeChangeClearsGesture(t *testing.T) {
	c := newController(t)
	c.CycleMode() // line
	c.Activate()  // anchor

	c.CycleMode() // rect
	if _, _, ok := c.Anchor(); ok {
		t.Error("Expected mode change to clear the pending gesture")
	}
}

func TestFillMode(t *testing.T) {
	c := newController(t)
	c.CycleMode() // line
	c.CycleMode() // rect
	c.CycleMode() // fill

	c.Activate()
	if got := c.Grid().Count(); got != 16*8 {
		t.Errorf("Expected full fill, got %d pixels", got)
	}
}

func TestModeCycleOrder(t *testing.T) {
	c := newController(t)

	want := []Mode{ModePen, ModeLine, ModeRect, ModeFill, ModeAnim, ModePen}
	for i, m := range want {
		if c.Mode() != m {
			t.Fatalf("Step %d: expected %v, got %v", i, m, c.Mode())
		}
		c.CycleMode()
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.txt")

	c := newController(t)
	c.Move(2, 2)
	c.Activate()
	c.Save(path)

	if msg, kind := c.Status(); kind != StatusOK {
		t.Fatalf("Expected StatusOK after save, got %q (%d)", msg, kind)
	}

	c2 := newController(t)
	c2.Load(path)
	if !c2.Grid().Equal(c.Grid()) {
		t.Error("Loaded grid does not match saved grid")
	}
}

func TestLoadFailureLeavesSession(t *testing.T) {
	c := newController(t)
	c.Move(1, 1)
	c.Activate()
	before := c.Grid().Clone()

	c.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	if _, kind := c.Status(); kind != StatusError {
		t.Error("Expected error status after failed load")
	}
	if !c.Grid().Equal(before) {
		t.Error("Failed load must not modify the grid")
	}
}

func TestLoadMalformedLeavesSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("not a header\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := newController(t)
	before := c.Grid().Clone()
	c.Load(path)

	if _, kind := c.Status(); kind != StatusError {
		t.Error("Expected error status for malformed file")
	}
	if !c.Grid().Equal(before) {
		t.Error("Malformed load must not modify the grid")
	}
}

func TestExportSingleGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.h")

	c := newController(t)
	c.Activate()
	c.Export(path, "sprite")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Export did not write a file: %v", err)
	}
	if !strings.Contains(string(data), "const unsigned char sprite[] PROGMEM") {
		t.Error("Export output missing array declaration")
	}
}

func TestExportAnimation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.h")

	c := newController(t)
	c.Activate()
	c.NewFrame()
	c.Move(1, 0)
	c.Activate()
	c.Export(path, "anim")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Export did not write a file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "ANIM_FRAME_COUNT 2") {
		t.Errorf("Expected 2-frame export, got:\n%s", out)
	}
	// Live grid edits must be committed into the exported current frame
	if !strings.Contains(out, "// frame 1") {
		t.Error("Missing frame boundary comment")
	}
}

func TestFrameNavigation(t *testing.T) {
	c := newController(t)
	c.Activate() // pixel at (0, 0) on frame 0

	c.NewFrame()
	if c.Reel().Current() != 1 {
		t.Fatalf("Expected frame 1, got %d", c.Reel().Current())
	}
	if c.Grid().Count() != 0 {
		t.Error("Expected new frame to start blank")
	}

	c.PrevFrame()
	if c.Grid().Get(0, 0) != raster.On {
		t.Error("Expected frame 0 content restored")
	}

	c.NextFrame()
	if c.Grid().Count() != 0 {
		t.Error("Expected blank frame 1 restored")
	}
}

func TestNewFrameAtLimit(t *testing.T) {
	c := newController(t)
	for i := 1; i < anim.MaxFrames; i++ {
		c.NewFrame()
	}
	if c.Reel().Len() != anim.MaxFrames {
		t.Fatalf("Expected %d frames, got %d", anim.MaxFrames, c.Reel().Len())
	}

	c.NewFrame()
	if c.Reel().Len() != anim.MaxFrames {
		t.Error("Expected NewFrame at limit to be a no-op")
	}
	if _, kind := c.Status(); kind != StatusError {
		t.Error("Expected error status at frame limit")
	}
}

func TestPlaybackTickPreservesEdits(t *testing.T) {
	c := newController(t)
	c.Activate()
	c.NewFrame()
	c.Move(1, 1)
	c.Activate() // edit frame 1

	c.TogglePlay()
	if !c.Reel().Playing() {
		t.Fatal("Expected playback active")
	}

	c.PlaybackTick() // wraps to frame 0
	if c.Reel().Current() != 0 {
		t.Fatalf("Expected wrap to frame 0, got %d", c.Reel().Current())
	}
	if c.Grid().Get(0, 0) != raster.On {
		t.Error("Expected frame 0 content as live grid")
	}

	c.PlaybackTick() // back to frame 1, edit intact
	if c.Grid().Get(1, 1) != raster.On {
		t.Error("PlaybackTick lost edits committed from the live grid")
	}
}

func TestAdjustSpeed(t *testing.T) {
	c := newController(t)
	start := c.Reel().Delay()

	c.AdjustSpeed(anim.DelayStep)
	if c.Reel().Delay() != start+anim.DelayStep {
		t.Errorf("Expected delay %v, got %v", start+anim.DelayStep, c.Reel().Delay())
	}

	c.AdjustSpeed(-10 * time.Second)
	if c.Reel().Delay() != anim.MinDelay {
		t.Errorf("Expected clamp to %v, got %v", anim.MinDelay, c.Reel().Delay())
	}
}
