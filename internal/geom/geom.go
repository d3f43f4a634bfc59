// Package geom holds the canvas-space primitives used for hit testing.
//
// Canvas space has y growing upwards in box terms: a Box's Top is the
// larger y value and Bottom the smaller one, matching how probe boxes are
// built from a pointer.
package geom

import "math"

// Point is a position in screen or canvas space.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Box is an axis aligned rectangle given by its four edges.
type Box struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// ProbeBox returns the 2x2 box centred on p used to test what lies under
// a pointer. Shapes apply their own hit radius on top of it.
func ProbeBox(p Point) Box {
	return Box{
		Left:   p.X - 1,
		Top:    p.Y + 1,
		Right:  p.X + 1,
		Bottom: p.Y - 1,
	}
}

// Normalize orders the edges so that Left <= Right and Bottom <= Top.
func (b Box) Normalize() Box {
	if b.Left > b.Right {
		b.Left, b.Right = b.Right, b.Left
	}
	if b.Bottom > b.Top {
		b.Bottom, b.Top = b.Top, b.Bottom
	}
	return b
}

// Center returns the middle of the box.
func (b Box) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p Point) bool {
	n := b.Normalize()
	return p.X >= n.Left && p.X <= n.Right && p.Y >= n.Bottom && p.Y <= n.Top
}

// Intersects reports whether two boxes share any point.
func (b Box) Intersects(o Box) bool {
	b, o = b.Normalize(), o.Normalize()
	return b.Left <= o.Right && o.Left <= b.Right && b.Bottom <= o.Top && o.Bottom <= b.Top
}

// clamp returns the point of the box closest to p.
func (b Box) clamp(p Point) Point {
	n := b.Normalize()
	return Point{
		X: math.Max(n.Left, math.Min(p.X, n.Right)),
		Y: math.Max(n.Bottom, math.Min(p.Y, n.Top)),
	}
}
