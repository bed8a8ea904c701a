package ports

import (
	"image"

	"go.trai.ch/tabicons/internal/core/domain"
)

// IconRenderer rasterizes a single tab-bar icon in memory.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type IconRenderer interface {
	// Render draws the circle for the given state in the given color onto a
	// fresh transparent canvas. It has no side effects.
	Render(color domain.RGB, active bool, style domain.RenderStyle) *image.NRGBA
}
