package raster

import (
	"image"
	"image/color"
)

// ringMask is an alpha mask selecting the pixels whose index distance d from
// center satisfies inner-0.5 <= d < outer+0.5. An inner radius below zero
// selects the whole disk.
//
// Distances are compared doubled so the half-pixel bounds stay in integers.
type ringMask struct {
	bounds image.Rectangle
	center image.Point
	outer2 int // (2*outer+1)^2
	inner2 int // (2*inner-1)^2, or -1 for a filled disk
}

func newRingMask(bounds image.Rectangle, center image.Point, outer, width int) ringMask {
	m := ringMask{
		bounds: bounds,
		center: center,
		outer2: (2*outer + 1) * (2*outer + 1),
		inner2: -1,
	}
	if width > 0 {
		inner := outer - width + 1
		m.inner2 = (2*inner - 1) * (2*inner - 1)
	}
	return m
}

func (m ringMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m ringMask) Bounds() image.Rectangle {
	return m.bounds
}

func (m ringMask) At(x, y int) color.Color {
	if m.covers(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (m ringMask) covers(x, y int) bool {
	dx, dy := 2*(x-m.center.X), 2*(y-m.center.Y)
	d2 := dx*dx + dy*dy
	return d2 < m.outer2 && d2 >= m.inner2
}
