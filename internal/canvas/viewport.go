// Package canvas converts between screen and canvas coordinates.
package canvas

import (
	"math"

	"github.com/dshills/graphsel/internal/geom"
)

// Transformer maps a screen pointer into canvas space.
type Transformer interface {
	ToCanvas(screen geom.Point) geom.Point
}

// Scale limits applied by ZoomAt.
const (
	MinScale = 0.1
	MaxScale = 10
)

// Viewport is a pan and zoom transform: screen = canvas*Scale + Offset.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// NewViewport returns a viewport with the given transform. A non positive
// scale is replaced by 1.
func NewViewport(offsetX, offsetY, scale float64) *Viewport {
	if scale <= 0 {
		scale = 1
	}
	return &Viewport{OffsetX: offsetX, OffsetY: offsetY, Scale: scale}
}

// ToCanvas implements Transformer.
func (v *Viewport) ToCanvas(p geom.Point) geom.Point {
	s := v.scale()
	return geom.Point{
		X: (p.X - v.OffsetX) / s,
		Y: (p.Y - v.OffsetY) / s,
	}
}

// ToScreen is the inverse of ToCanvas.
func (v *Viewport) ToScreen(p geom.Point) geom.Point {
	s := v.scale()
	return geom.Point{
		X: p.X*s + v.OffsetX,
		Y: p.Y*s + v.OffsetY,
	}
}

// Pan moves the view by a screen delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt multiplies the scale by factor while keeping the canvas point
// under the screen point at fixed.
func (v *Viewport) ZoomAt(fixed geom.Point, factor float64) {
	world := v.ToCanvas(fixed)
	v.Scale = math.Max(MinScale, math.Min(MaxScale, v.scale()*factor))
	v.OffsetX = fixed.X - world.X*v.Scale
	v.OffsetY = fixed.Y - world.Y*v.Scale
}

func (v *Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// Identity is a Transformer for callers already in canvas space.
type Identity struct{}

// ToCanvas returns p unchanged.
func (Identity) ToCanvas(p geom.Point) geom.Point { return p }
