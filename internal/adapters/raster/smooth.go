package raster

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// smoothMask rasterizes the same ring as ringMask with anti-aliased edges.
// Pixel i covers [i, i+1), so the circle is centered on center+0.5.
func smoothMask(bounds image.Rectangle, center image.Point, outer, width int) *image.Alpha {
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	cx := float32(center.X-bounds.Min.X) + 0.5
	cy := float32(center.Y-bounds.Min.Y) + 0.5

	circlePath(z, cx, cy, float32(outer)+0.5, 1)
	if width > 0 {
		// Opposite winding cuts the hole.
		circlePath(z, cx, cy, float32(outer-width)+0.5, -1)
	}

	mask := image.NewAlpha(bounds)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// circlePath appends a closed circle to z. dir selects the winding: 1 runs
// clockwise on screen, -1 counter-clockwise.
func circlePath(z *vector.Rasterizer, cx, cy, r, dir float32) {
	k := kappa * r
	s := dir
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r)
	z.CubeTo(cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy)
	z.CubeTo(cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r)
	z.CubeTo(cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
	z.ClosePath()
}
