package renderer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/graphsel/internal/renderer/backend"
)

// Palette holds the colors elements are drawn with.
type Palette struct {
	Node     colorful.Color
	Edge     colorful.Color
	Selected colorful.Color
	Hover    colorful.Color
	Label    colorful.Color

	// SelectedBlend and HoverBlend are how far, from 0 to 1, an element's
	// color moves towards Selected or Hover.
	SelectedBlend float64
	HoverBlend    float64
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Node:          colorful.Color{R: 0.38, G: 0.65, B: 0.87},
		Edge:          colorful.Color{R: 0.55, G: 0.55, B: 0.6},
		Selected:      colorful.Color{R: 1.0, G: 0.76, B: 0.03},
		Hover:         colorful.Color{R: 1.0, G: 1.0, B: 1.0},
		Label:         colorful.Color{R: 0.85, G: 0.85, B: 0.85},
		SelectedBlend: 0.7,
		HoverBlend:    0.4,
	}
}

// ParseColor parses a hex color such as "#ff8800" or "#f80", falling back
// to def for empty or malformed input.
func ParseColor(s string, def colorful.Color) colorful.Color {
	if s == "" {
		return def
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def
	}
	return c
}

// Shade returns the color for an element in the given state. Selection is
// applied first so a hovered selected element stays recognisably selected.
func (p Palette) Shade(base colorful.Color, selected, hovered bool) colorful.Color {
	c := base
	if selected {
		c = c.BlendLab(p.Selected, p.SelectedBlend)
	}
	if hovered {
		c = c.BlendLab(p.Hover, p.HoverBlend)
	}
	return c.Clamped()
}

func (p Palette) style(base colorful.Color, selected, hovered bool) backend.Style {
	return backend.Style{
		Foreground: backend.RGB(p.Shade(base, selected, hovered)),
		Background: backend.ColorDefault,
		Bold:       selected,
		Underline:  hovered,
	}
}
