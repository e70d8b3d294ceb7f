package raster

import "errors"

// Grid size limits, matching the largest target panel (128x64 OLED)
const (
	MaxWidth  = 128
	MaxHeight = 64
)

var (
	ErrInvalidSize  = errors.New("grid dimensions must be at least 1x1")
	ErrSizeExceeded = errors.New("grid dimensions exceed maximum size")
)

// Pixel is a single 1-bit pixel value
type Pixel uint8

const (
	Off Pixel = iota
	On
	// Undefined is returned by Get for out-of-bounds coordinates
	Undefined
)

// Toggle returns the opposite pixel value
func (p Pixel) Toggle() Pixel {
	if p == On {
		return Off
	}
	return On
}

// Grid is a fixed-size monochrome pixel surface
// Coordinates are (x, y) with origin top-left, row-major storage
type Grid struct {
	width  int
	height int
	pixels [][]Pixel
}

// New creates a grid with every pixel Off
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidSize
	}
	if width > MaxWidth || height > MaxHeight {
		return nil, ErrSizeExceeded
	}

	pixels := make([][]Pixel, height)
	for y := 0; y < height; y++ {
		pixels[y] = make([]Pixel, width)
	}

	return &Grid{
		width:  width,
		height: height,
		pixels: pixels,
	}, nil
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a stored pixel
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes a pixel; out-of-bounds coordinates are ignored
// Callers routinely pass cursor-derived coordinates that stray off-grid
// mid-gesture, so this is a no-op rather than an error
func (g *Grid) Set(x, y int, p Pixel) {
	if !g.InBounds(x, y) {
		return
	}
	g.pixels[y][x] = p
}

// Get reads a pixel, or Undefined if (x, y) is out of bounds
func (g *Grid) Get(x, y int) Pixel {
	if !g.InBounds(x, y) {
		return Undefined
	}
	return g.pixels[y][x]
}

// Clear sets every pixel to Off
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.pixels[y][x] = Off
		}
	}
}

// Clone returns an independent deep copy
func (g *Grid) Clone() *Grid {
	pixels := make([][]Pixel, g.height)
	for y := 0; y < g.height; y++ {
		pixels[y] = make([]Pixel, g.width)
		copy(pixels[y], g.pixels[y])
	}
	return &Grid{
		width:  g.width,
		height: g.height,
		pixels: pixels,
	}
}

// CopyFrom overwrites this grid's contents with src's
// Both grids must share dimensions; mismatched sizes are ignored
func (g *Grid) CopyFrom(src *Grid) {
	if src == nil || src.width != g.width || src.height != g.height {
		return
	}
	for y := 0; y < g.height; y++ {
		copy(g.pixels[y], src.pixels[y])
	}
}

// Equal reports whether both grids have identical dimensions and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.pixels[y][x] != other.pixels[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of pixels currently On
func (g *Grid) Count() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.pixels[y][x] == On {
				n++
			}
		}
	}
	return n
}
