// Package preview renders icon images as ASCII grids for terminal inspection.
package preview

import (
	"bufio"
	"image"
	"io"
)

const (
	opaque      = '#'
	partial     = '+'
	transparent = '.'
)

// Write prints img one row per line: '#' for opaque pixels, '+' for partially
// covered pixels and '.' for transparent ones.
func Write(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_ = bw.WriteByte(glyph(img, x, y))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(img image.Image, x, y int) byte {
	_, _, _, a := img.At(x, y).RGBA()
	switch a {
	case 0:
		return transparent
	case 0xffff:
		return opaque
	default:
		return partial
	}
}
