package domain

import "image/color"

// Category identifies a tab-bar icon family.
type Category string

const (
	// CategoryHome is the landing tab.
	CategoryHome Category = "home"
	// CategoryCustomers is the customer directory tab.
	CategoryCustomers Category = "customers"
	// CategoryProducts is the product catalogue tab.
	CategoryProducts Category = "products"
	// CategoryOrders is the order list tab.
	CategoryOrders Category = "orders"
	// CategoryProfile is the account tab.
	CategoryProfile Category = "profile"
)

// String returns the category identifier.
func (c Category) String() string {
	return string(c)
}

// RGB is an opaque 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color as a fully opaque non-premultiplied color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette maps categories to their colors. A Palette is immutable once built.
type Palette struct {
	order  []Category
	colors map[Category]RGB
}

// PaletteEntry is a single category/color pair used to build a Palette.
type PaletteEntry struct {
	Category Category
	Color    RGB
}

// NewPalette builds a Palette from the given entries, preserving their order.
// A later entry for the same category replaces the earlier color.
func NewPalette(entries ...PaletteEntry) Palette {
	p := Palette{
		order:  make([]Category, 0, len(entries)),
		colors: make(map[Category]RGB, len(entries)),
	}
	for _, e := range entries {
		if _, ok := p.colors[e.Category]; !ok {
			p.order = append(p.order, e.Category)
		}
		p.colors[e.Category] = e.Color
	}
	return p
}

// DefaultPalette returns the built-in tab-bar color table.
func DefaultPalette() Palette {
	return NewPalette(
		PaletteEntry{Category: CategoryHome, Color: RGB{R: 25, G: 118, B: 210}},
		PaletteEntry{Category: CategoryCustomers, Color: RGB{R: 76, G: 175, B: 80}},
		PaletteEntry{Category: CategoryProducts, Color: RGB{R: 255, G: 152, B: 0}},
		PaletteEntry{Category: CategoryOrders, Color: RGB{R: 156, G: 39, B: 176}},
		PaletteEntry{Category: CategoryProfile, Color: RGB{R: 244, G: 67, B: 54}},
	)
}

// Lookup returns the color registered for the category.
func (p Palette) Lookup(c Category) (RGB, error) {
	rgb, ok := p.colors[c]
	if !ok {
		return RGB{}, WithDetail(ErrUnknownCategory, "category", c.String())
	}
	return rgb, nil
}

// Categories returns the registered categories in registration order.
func (p Palette) Categories() []Category {
	out := make([]Category, len(p.order))
	copy(out, p.order)
	return out
}
