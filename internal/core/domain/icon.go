package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Icon canvas geometry, in pixels.
const (
	// CanvasSize is the width and height of every icon.
	CanvasSize = 48
	// CanvasCenter is the pixel index the circle is centered on, on both axes.
	CanvasCenter = CanvasSize / 2
	// ActiveRadius is the radius of the filled disk drawn for active icons.
	ActiveRadius = 16
	// InactiveRadius is the outer radius of the outline drawn for inactive icons.
	InactiveRadius = 14
	// OutlineWidth is the stroke width of the inactive outline.
	OutlineWidth = 2
)

// IconExtension is the only file extension icons are written with.
const IconExtension = ".png"

// Shape describes the circle drawn for one icon state.
type Shape struct {
	Radius int
	// Width is the stroke width drawn inward from Radius. Zero means filled.
	Width int
}

// Filled reports whether the shape is a solid disk.
func (s Shape) Filled() bool {
	return s.Width == 0
}

// ShapeFor returns the circle geometry for the given state.
func ShapeFor(active bool) Shape {
	if active {
		return Shape{Radius: ActiveRadius}
	}
	return Shape{Radius: InactiveRadius, Width: OutlineWidth}
}

// IconSpec describes one output file.
type IconSpec struct {
	Filename string
	Category Category
	Active   bool
}

// State returns "active" or "inactive".
func (s IconSpec) State() string {
	if s.Active {
		return "active"
	}
	return "inactive"
}

// Validate checks that the filename is a bare PNG file name.
func (s IconSpec) Validate() error {
	name := s.Filename
	switch {
	case name == "":
		return WithDetail(ErrInvalidIconFilename, "reason", "empty")
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name || name == "." || name == "..":
		return zerr.With(WithDetail(ErrInvalidIconFilename, "file", name), "reason", "contains path separator")
	case !strings.EqualFold(filepath.Ext(name), IconExtension) || len(name) == len(IconExtension):
		return zerr.With(WithDetail(ErrInvalidIconFilename, "file", name), "reason", "must be a .png file")
	}
	return nil
}

// Manifest is the ordered list of icons to generate.
type Manifest []IconSpec

// DefaultManifest returns the built-in list of ten tab-bar icons: an
// inactive and an active variant for each category.
func DefaultManifest() Manifest {
	categories := []Category{
		CategoryHome,
		CategoryCustomers,
		CategoryProducts,
		CategoryOrders,
		CategoryProfile,
	}
	m := make(Manifest, 0, len(categories)*2)
	for _, c := range categories {
		m = append(m,
			IconSpec{Filename: c.String() + IconExtension, Category: c},
			IconSpec{Filename: c.String() + "-active" + IconExtension, Category: c, Active: true},
		)
	}
	return m
}

// Validate checks every entry's filename and rejects duplicates.
// Categories are not checked here; they are resolved against the palette
// when each icon is rendered.
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return ErrEmptyManifest
	}
	seen := make(map[string]struct{}, len(m))
	for _, spec := range m {
		if err := spec.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(spec.Filename)
		if _, dup := seen[key]; dup {
			return WithDetail(ErrDuplicateIconFilename, "file", spec.Filename)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Filenames returns the output file names in manifest order.
func (m Manifest) Filenames() []string {
	names := make([]string, len(m))
	for i, spec := range m {
		names[i] = spec.Filename
	}
	return names
}
