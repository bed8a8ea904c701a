// Package raster implements the icon renderer.
package raster

import (
	"image"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"golang.org/x/image/draw"
)

var _ ports.IconRenderer = (*Renderer)(nil)

// Renderer draws tab-bar icons onto fixed-size transparent canvases.
type Renderer struct {
	size   int
	center image.Point
}

// New creates a Renderer for the standard icon canvas.
func New() *Renderer {
	return &Renderer{
		size:   domain.CanvasSize,
		center: image.Pt(domain.CanvasCenter, domain.CanvasCenter),
	}
}

// Render draws a filled disk for active icons and an outline for inactive
// ones, in the given color, on a transparent canvas.
func (r *Renderer) Render(c domain.RGB, active bool, style domain.RenderStyle) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, r.size, r.size))
	shape := domain.ShapeFor(active)

	var mask image.Image
	if style == domain.RenderStyleSmooth {
		mask = smoothMask(canvas.Bounds(), r.center, shape.Radius, shape.Width)
	} else {
		mask = newRingMask(canvas.Bounds(), r.center, shape.Radius, shape.Width)
	}

	draw.DrawMask(canvas, canvas.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, mask, image.Point{}, draw.Over)
	return canvas
}

// Render draws an icon with the default renderer and the hard style.
func Render(c domain.RGB, active bool) *image.NRGBA {
	return New().Render(c, active, domain.RenderStyleHard)
}
