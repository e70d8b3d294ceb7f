// Package render draws the editor state onto a tcell screen. Two
// vertically adjacent pixels share one terminal cell via half-block
// runes, so a 128x64 grid fits in a 128x32 character area.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixelpen/editor"
	"github.com/lixenwraith/pixelpen/raster"
)

// Box drawing and block characters
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
	blockFull      = '█'
	blockUpper     = '▀'
	blockLower     = '▄'
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleAnchor  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOK      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer draws a Controller onto a screen at a fixed origin
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the full frame: bordered grid, cursor, and status bar
func (r *Renderer) Draw(c *editor.Controller) {
	r.screen.Clear()

	g := c.Grid()
	rows := (g.Height() + 1) / 2

	r.drawBorder(g.Width(), rows)
	r.drawGrid(g)
	r.drawCursor(c)
	r.drawStatus(c, rows+2)

	r.screen.Show()
}

func (r *Renderer) drawBorder(cols, rows int) {
	right := cols + 1
	bottom := rows + 1

	r.screen.SetContent(0, 0, boxTopLeft, nil, styleBorder)
	r.screen.SetContent(right, 0, boxTopRight, nil, styleBorder)
	r.screen.SetContent(0, bottom, boxBottomLeft, nil, styleBorder)
	r.screen.SetContent(right, bottom, boxBottomRight, nil, styleBorder)
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, boxHorizontal, nil, styleBorder)
		r.screen.SetContent(x, bottom, boxHorizontal, nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, boxVertical, nil, styleBorder)
		r.screen.SetContent(right, y, boxVertical, nil, styleBorder)
	}
}

func (r *Renderer) drawGrid(g *raster.Grid) {
	for cy := 0; cy < (g.Height()+1)/2; cy++ {
		for x := 0; x < g.Width(); x++ {
			top := g.Get(x, cy*2) == raster.On
			bot := g.Get(x, cy*2+1) == raster.On
			r.screen.SetContent(x+1, cy+1, halfBlock(top, bot), nil, styleDefault)
		}
	}
}

func halfBlock(top, bot bool) rune {
	switch {
	case top && bot:
		return blockFull
	case top:
		return blockUpper
	case bot:
		return blockLower
	}
	return ' '
}

// drawCursor re-renders the cursor's cell inverted; the anchor of a
// pending gesture gets its own highlight
func (r *Renderer) drawCursor(c *editor.Controller) {
	g := c.Grid()

	if ax, ay, ok := c.Anchor(); ok {
		r.overlayCell(g, ax, ay, styleAnchor)
	}
	cx, cy := c.Cursor()
	r.overlayCell(g, cx, cy, styleCursor)
}

func (r *Renderer) overlayCell(g *raster.Grid, x, y int, style tcell.Style) {
	cy := y / 2
	top := g.Get(x, cy*2) == raster.On
	bot := g.Get(x, cy*2+1) == raster.On
	r.screen.SetContent(x+1, cy+1, halfBlock(top, bot), nil, style)
}

func (r *Renderer) drawStatus(c *editor.Controller, row int) {
	reel := c.Reel()

	color := "ON"
	if c.Color() == raster.Off {
		color = "OFF"
	}
	rect := "outline"
	if c.FilledRect() {
		rect = "filled"
	}
	play := "stopped"
	if reel.Playing() {
		play = "playing"
	}

	line := fmt.Sprintf("%s | color %s | rect %s | frame %d/%d | %s %dms",
		c.Mode(), color, rect, reel.Current()+1, reel.Len(), play, reel.Delay().Milliseconds())
	r.print(0, row, line, styleStatus)

	if msg, kind := c.Status(); msg != "" {
		style := styleStatus
		switch kind {
		case editor.StatusOK:
			style = styleOK
		case editor.StatusError:
			style = styleError
		}
		r.print(0, row+1, msg, style)
	}
}

func (r *Renderer) print(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
