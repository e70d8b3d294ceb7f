package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixelpen/editor"
	"github.com/lixenwraith/pixelpen/raster"
)

func newSim(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("SimulationScreen init failed: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	primary, _, _, _ := screen.GetContent(x, y)
	return primary
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := newSim(t)
	defer screen.Fini()

	c, err := editor.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Column 2: top pixel of the first cell pair
	c.Grid().Set(2, 0, raster.On)
	// Column 3: both pixels of the first cell pair
	c.Grid().Set(3, 0, raster.On)
	c.Grid().Set(3, 1, raster.On)
	// Column 4: bottom pixel only
	c.Grid().Set(4, 1, raster.On)

	New(screen).Draw(c)

	// Grid content starts at (1, 1) inside the border
	if got := cellRune(t, screen, 3, 1); got != blockUpper {
		t.Errorf("Expected upper half block at column 2, got %q", got)
	}
	if got := cellRune(t, screen, 4, 1); got != blockFull {
		t.Errorf("Expected full block at column 3, got %q", got)
	}
	if got := cellRune(t, screen, 5, 1); got != blockLower {
		t.Errorf("Expected lower half block at column 4, got %q", got)
	}
	if got := cellRune(t, screen, 6, 1); got != ' ' {
		t.Errorf("Expected blank at column 5, got %q", got)
	}
}

func TestDrawBorder(t *testing.T) {
	screen := newSim(t)
	defer screen.Fini()

	c, err := editor.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	New(screen).Draw(c)

	// 8 columns + border, 2 half-block rows + border
	if got := cellRune(t, screen, 0, 0); got != boxTopLeft {
		t.Errorf("Expected top-left corner, got %q", got)
	}
	if got := cellRune(t, screen, 9, 0); got != boxTopRight {
		t.Errorf("Expected top-right corner, got %q", got)
	}
	if got := cellRune(t, screen, 0, 3); got != boxBottomLeft {
		t.Errorf("Expected bottom-left corner, got %q", got)
	}
	if got := cellRune(t, screen, 9, 3); got != boxBottomRight {
		t.Errorf("Expected bottom-right corner, got %q", got)
	}
}

func TestDrawStatusLine(t *testing.T) {
	screen := newSim(t)
	defer screen.Fini()

	c, err := editor.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	New(screen).Draw(c)

	// Status row sits below the bordered grid: rows 0..3 used, then a gap
	row := 4
	var line []rune
	for x := 0; x < 40; x++ {
		line = append(line, cellRune(t, screen, x, row))
	}
	got := string(line)
	if want := "PEN"; got[:3] != want {
		t.Errorf("Status line = %q, want prefix %q", got, want)
	}
}
