package geom

import "math"

// Shape is the geometric footprint of a drawn element.
type Shape interface {
	// Overlaps reports whether the shape intersects the box.
	Overlaps(b Box) bool
	// Bounds returns the smallest box enclosing the shape.
	Bounds() Box
}

// Circle is a disc, the default node footprint.
type Circle struct {
	Center Point
	Radius float64
}

// Overlaps tests the box point nearest the centre against the radius.
func (c Circle) Overlaps(b Box) bool {
	return b.clamp(c.Center).Dist(c.Center) <= c.Radius
}

// Bounds implements Shape.
func (c Circle) Bounds() Box {
	return Box{
		Left:   c.Center.X - c.Radius,
		Top:    c.Center.Y + c.Radius,
		Right:  c.Center.X + c.Radius,
		Bottom: c.Center.Y - c.Radius,
	}
}

// Rect is an axis aligned rectangle, used for box shaped nodes.
type Rect struct {
	Center        Point
	Width, Height float64
}

// Overlaps implements Shape.
func (r Rect) Overlaps(b Box) bool {
	return r.Bounds().Intersects(b)
}

// Bounds implements Shape.
func (r Rect) Bounds() Box {
	return Box{
		Left:   r.Center.X - r.Width/2,
		Top:    r.Center.Y + r.Height/2,
		Right:  r.Center.X + r.Width/2,
		Bottom: r.Center.Y - r.Height/2,
	}
}

// Segment is a straight edge with a hit tolerance either side of it.
type Segment struct {
	From, To Point
	// Width is the total hit width around the line.
	Width float64
}

// Overlaps is true when the box centre lies within Width/2 of the segment
// or the segment passes through the box.
func (s Segment) Overlaps(b Box) bool {
	if s.crosses(b) {
		return true
	}
	return s.distance(b.Center()) <= s.Width/2
}

// Bounds implements Shape.
func (s Segment) Bounds() Box {
	half := s.Width / 2
	return Box{
		Left:   math.Min(s.From.X, s.To.X) - half,
		Top:    math.Max(s.From.Y, s.To.Y) + half,
		Right:  math.Max(s.From.X, s.To.X) + half,
		Bottom: math.Min(s.From.Y, s.To.Y) - half,
	}
}

// distance from p to the closest point on the segment.
func (s Segment) distance(p Point) float64 {
	d := s.To.Sub(s.From)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return p.Dist(s.From)
	}
	t := ((p.X-s.From.X)*d.X + (p.Y-s.From.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{X: s.From.X + t*d.X, Y: s.From.Y + t*d.Y})
}

// crosses clips the segment against the box (Liang-Barsky).
func (s Segment) crosses(b Box) bool {
	n := b.Normalize()
	d := s.To.Sub(s.From)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = math.Min(t1, r)
		}
		return true
	}
	return clip(-d.X, s.From.X-n.Left) &&
		clip(d.X, n.Right-s.From.X) &&
		clip(-d.Y, s.From.Y-n.Bottom) &&
		clip(d.Y, n.Top-s.From.Y)
}
