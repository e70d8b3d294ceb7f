// Package codec implements the two persistence formats: a round-trippable
// text grid and a write-only packed-bitmap C array for embedded targets.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/pixelpen/raster"
)

// ErrInvalidFormat reports a missing or unparsable text-format header
var ErrInvalidFormat = errors.New("invalid grid file format")

// EncodeText renders a grid in the text format: a "<width> <height>"
// header line followed by height rows of '0'/'1' characters.
func EncodeText(g *raster.Grid) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * (g.Height() + 1))

	fmt.Fprintf(&b, "%d %d\n", g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) == raster.On {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeText parses the text format back into a grid. The header is
// strict; data rows are tolerant: characters other than '0'/'1', columns
// past the declared width, and missing trailing rows all leave the
// affected pixels at their default Off. Partial recovery beats a failed
// load for a hand-editable format.
func DecodeText(data string) (*raster.Grid, error) {
	lines := strings.Split(data, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("missing header: %w", ErrInvalidFormat)
	}

	var width, height int
	if n, err := fmt.Sscanf(lines[0], "%d %d", &width, &height); err != nil || n != 2 {
		return nil, fmt.Errorf("header %q: %w", lines[0], ErrInvalidFormat)
	}

	g, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height && y+1 < len(lines); y++ {
		row := lines[y+1]
		for x := 0; x < len(row) && x < width; x++ {
			if row[x] == '1' {
				g.Set(x, y, raster.On)
			}
		}
	}
	return g, nil
}
