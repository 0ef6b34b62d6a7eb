// Package style holds the shared drawing style: the color palette and
// the size classes that scale line widths, text and blur strength.
package style

import "image/color"

// Color is an 8-bit RGBA color. Drawables keep a copy of the style they
// were created with, so Color is a plain value type.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color with non-premultiplied semantics widened
// to 16 bit, matching color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns c as a stdlib color for the raster layer.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// The palette. Cove is the near-black used for outlines and text.
var (
	Orange = Color{240, 147, 43, 255}
	Red    = Color{235, 77, 75, 255}
	Green  = Color{106, 176, 76, 255}
	Blue   = Color{34, 166, 179, 255}
	Cove   = Color{19, 15, 64, 255}
	Pink   = Color{255, 121, 121, 255}
)

// Palette lists the selectable swatches in UI order.
var Palette = []Color{Orange, Red, Green, Blue, Cove}

// Size selects one of three preset magnitudes for tool output.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "unknown"
}

// LineWidth is the stroke width for outline tools.
func (s Size) LineWidth() float64 {
	switch s {
	case Small:
		return 2
	case Large:
		return 5
	default:
		return 3
	}
}

// TextSize is the font size in points for the text tool and markers.
func (s Size) TextSize() float64 {
	switch s {
	case Small:
		return 12
	case Large:
		return 32
	default:
		return 18
	}
}

// BlurFactor is the downscale divisor for the blur tool.
func (s Size) BlurFactor() int {
	switch s {
	case Small:
		return 6
	case Large:
		return 20
	default:
		return 10
	}
}

// HighlightWidth is the stroke width of the freehand highlighter.
func (s Size) HighlightWidth() float64 {
	switch s {
	case Small:
		return 15
	case Large:
		return 45
	default:
		return 30
	}
}

// HighlightAlpha is the fixed translucency of highlight fills.
const HighlightAlpha uint8 = 102

// Style is the tool configuration captured into each drawable when it
// is created. Later style changes do not touch committed drawables.
type Style struct {
	Color Color
	Size  Size
	Fill  bool
}

// Default is the startup style.
func Default() Style {
	return Style{Color: Red, Size: Medium}
}
