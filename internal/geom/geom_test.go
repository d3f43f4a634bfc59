package geom

import "testing"

func TestProbeBox(t *testing.T) {
	got := ProbeBox(Point{X: 10, Y: 20})
	want := Box{Left: 9, Top: 21, Right: 11, Bottom: 19}
	if got != want {
		t.Errorf("ProbeBox() = %+v, want %+v", got, want)
	}
	if !got.Contains(Point{X: 10, Y: 20}) {
		t.Error("probe box should contain its pointer")
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{Left: 0, Top: 10, Right: 10, Bottom: 0}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{Left: 2, Top: 4, Right: 4, Bottom: 2}, true},
		{"touching edge", Box{Left: 10, Top: 5, Right: 12, Bottom: 3}, true},
		{"left of", Box{Left: -5, Top: 5, Right: -1, Bottom: 3}, false},
		{"above", Box{Left: 2, Top: 15, Right: 4, Bottom: 11}, false},
		{"unnormalized", Box{Left: 4, Top: 2, Right: 2, Bottom: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleOverlaps(t *testing.T) {
	c := Circle{Center: Point{X: 0, Y: 0}, Radius: 5}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{5.5, 0}, true}, // probe reaches back to the rim
		{Point{6.5, 0}, false},
		{Point{4, 4}, true},
		{Point{5, 5}, false},
	}
	for _, tt := range tests {
		if got := c.Overlaps(ProbeBox(tt.p)); got != tt.want {
			t.Errorf("Circle.Overlaps(probe %v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{Center: Point{X: 0, Y: 0}, Width: 10, Height: 4}
	if !r.Overlaps(ProbeBox(Point{X: 5.5, Y: 0})) {
		t.Error("probe at the right edge should overlap")
	}
	if r.Overlaps(ProbeBox(Point{X: 0, Y: 4})) {
		t.Error("probe above the rect should not overlap")
	}
}

func TestSegmentOverlaps(t *testing.T) {
	s := Segment{From: Point{X: 0, Y: 0}, To: Point{X: 100, Y: 0}, Width: 6}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"on line", Point{X: 50, Y: 0}, true},
		{"within width", Point{X: 50, Y: 2.5}, true},
		{"just outside width", Point{X: 50, Y: 3.5}, false},
		{"outside width", Point{X: 50, Y: 10}, false},
		{"past the end", Point{X: 110, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Overlaps(ProbeBox(tt.p)); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentCrossesDiagonal(t *testing.T) {
	s := Segment{From: Point{X: -10, Y: -10}, To: Point{X: 10, Y: 10}}
	if !s.Overlaps(Box{Left: -1, Top: 1, Right: 1, Bottom: -1}) {
		t.Error("diagonal through the box should overlap even with zero width")
	}
	if s.Overlaps(Box{Left: 5, Top: -3, Right: 7, Bottom: -5}) {
		t.Error("box off the diagonal should not overlap")
	}
}

func TestSegmentDegenerate(t *testing.T) {
	s := Segment{From: Point{X: 3, Y: 3}, To: Point{X: 3, Y: 3}, Width: 2}
	if !s.Overlaps(ProbeBox(Point{X: 3, Y: 3})) {
		t.Error("zero length segment should behave like a point")
	}
}
