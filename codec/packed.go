package codec

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/pixelpen/raster"
)

const packedBytesPerLine = 12

// BytesPerFrame returns the packed size of one frame: rows are packed
// independently, so each starts on a fresh byte.
func BytesPerFrame(width, height int) int {
	return (width + 7) / 8 * height
}

// PackGrid packs a grid into bytes, row by row, MSB first: the leftmost
// pixel of each 8-pixel group occupies bit 7, and the final byte of a
// row is zero-padded in its low bits when the width is not a multiple
// of 8.
func PackGrid(g *raster.Grid) []byte {
	stride := (g.Width() + 7) / 8
	out := make([]byte, stride*g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) == raster.On {
				out[y*stride+x/8] |= 1 << (7 - uint(x%8))
			}
		}
	}
	return out
}

// ExportGrid renders a grid as a C byte-array literal suitable for
// flashing into byte-addressable read-only memory on the target device.
// Write-only: this format is not re-loadable by the editor.
func ExportGrid(g *raster.Grid, symbol string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %dx%d bitmap, %d bytes\n", g.Width(), g.Height(), BytesPerFrame(g.Width(), g.Height()))
	fmt.Fprintf(&b, "const unsigned char %s[] PROGMEM = {\n", symbol)
	writePackedBytes(&b, PackGrid(g))
	b.WriteString("};\n")
	fmt.Fprintf(&b, "#define %s_WIDTH %d\n", strings.ToUpper(symbol), g.Width())
	fmt.Fprintf(&b, "#define %s_HEIGHT %d\n", strings.ToUpper(symbol), g.Height())
	return b.String()
}

// ExportFrames renders an animation as one concatenated C byte array,
// frames in sequence order with a boundary comment each, followed by the
// width/height/frame-count/bytes-per-frame constants.
func ExportFrames(frames []*raster.Grid, symbol string) string {
	var b strings.Builder
	if len(frames) == 0 {
		return ""
	}

	w, h := frames[0].Width(), frames[0].Height()
	fmt.Fprintf(&b, "// %dx%d animation, %d frames, %d bytes per frame\n",
		w, h, len(frames), BytesPerFrame(w, h))
	fmt.Fprintf(&b, "const unsigned char %s[] PROGMEM = {\n", symbol)
	for i, f := range frames {
		fmt.Fprintf(&b, "    // frame %d\n", i)
		writePackedBytes(&b, PackGrid(f))
	}
	b.WriteString("};\n")

	upper := strings.ToUpper(symbol)
	fmt.Fprintf(&b, "#define %s_WIDTH %d\n", upper, w)
	fmt.Fprintf(&b, "#define %s_HEIGHT %d\n", upper, h)
	fmt.Fprintf(&b, "#define %s_FRAME_COUNT %d\n", upper, len(frames))
	fmt.Fprintf(&b, "#define %s_BYTES_PER_FRAME %d\n", upper, BytesPerFrame(w, h))
	return b.String()
}

func writePackedBytes(b *strings.Builder, data []byte) {
	for i, v := range data {
		if i%packedBytesPerLine == 0 {
			b.WriteString("    ")
		}
		fmt.Fprintf(b, "0x%02X,", v)
		if i%packedBytesPerLine == packedBytesPerLine-1 || i == len(data)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
}
