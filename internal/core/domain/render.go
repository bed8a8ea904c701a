package domain

import "strings"

// RenderStyle selects how circle edges are rasterized.
type RenderStyle string

const (
	// RenderStyleHard produces pixels that are either fully covered or empty.
	RenderStyleHard RenderStyle = "hard"
	// RenderStyleSmooth anti-aliases the circle edges.
	RenderStyleSmooth RenderStyle = "smooth"
)

// DefaultRenderStyle is used when neither the manifest nor the flags set one.
const DefaultRenderStyle = RenderStyleHard

// ParseRenderStyle converts user input to a RenderStyle. Empty input yields
// the default style.
func ParseRenderStyle(s string) (RenderStyle, error) {
	switch RenderStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultRenderStyle, nil
	case RenderStyleHard:
		return RenderStyleHard, nil
	case RenderStyleSmooth:
		return RenderStyleSmooth, nil
	default:
		return "", WithDetail(ErrInvalidRenderStyle, "style", s)
	}
}

// String returns the style name.
func (s RenderStyle) String() string {
	return string(s)
}
