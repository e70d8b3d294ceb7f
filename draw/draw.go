// Package draw provides the stateless drawing primitives that mutate a
// raster.Grid: line rasterization, rectangle stroke/fill, and flood fill.
// All primitives clip silently; sub-operations targeting out-of-bounds
// coordinates are dropped rather than failing the call.
package draw

import (
	"github.com/lixenwraith/pixelpen/raster"
)

// FloodQueueCap bounds the flood-fill frontier. Sized above two full
// 128x64 grids so any supported grid fills completely; if the frontier
// ever approaches this limit the fill degrades to a partial fill
// instead of overflowing.
const FloodQueueCap = 16384

// Line rasterizes the segment from (x0, y0) to (x1, y1) with Bresenham's
// integer midpoint algorithm. Endpoints are always plotted; a degenerate
// segment plots a single point. Coordinates may be negative; plotting
// skips them and Grid.Set clips the rest.
func Line(g *raster.Grid, x0, y0, x1, y1 int, p raster.Pixel) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := step(x0, x1)
	sy := step(y0, y1)
	err := dx - dy

	for {
		if x0 >= 0 && y0 >= 0 {
			g.Set(x0, y0, p)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws a w x h rectangle anchored at (x, y). Filled plots the whole
// block; outline plots the border only. A rectangle one cell tall or wide
// collapses to a single line.
func Rect(g *raster.Grid, x, y, w, h int, p raster.Pixel, filled bool) {
	if w < 1 || h < 1 {
		return
	}

	if filled {
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				g.Set(col, row, p)
			}
		}
		return
	}

	for col := x; col < x+w; col++ {
		g.Set(col, y, p)
		if h > 1 {
			g.Set(col, y+h-1, p)
		}
	}
	for row := y + 1; row < y+h-1; row++ {
		g.Set(x, row, p)
		if w > 1 {
			g.Set(x+w-1, row, p)
		}
	}
}

// FloodFill recolors the 4-connected region containing (x, y) to p using
// breadth-first traversal. Starting out of bounds, or on a pixel that
// already equals p, is a no-op. Cells are overwritten to p as they are
// enqueued, which doubles as the visited marker.
func FloodFill(g *raster.Grid, x, y int, p raster.Pixel) {
	target := g.Get(x, y)
	if target == raster.Undefined || target == p {
		return
	}

	type point struct{ x, y int }
	queue := make([]point, 0, 64)

	g.Set(x, y, p)
	queue = append(queue, point{x, y})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cur.x+d.x, cur.y+d.y
			if g.Get(nx, ny) != target {
				continue
			}
			if len(queue) >= FloodQueueCap {
				// Defined degradation: stop growing the frontier
				// rather than overflowing; the fill stays partial.
				return
			}
			g.Set(nx, ny, p)
			queue = append(queue, point{nx, ny})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
