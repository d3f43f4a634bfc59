package renderer

import "math"

type cell struct{ x, y int }

// line returns the cells on the line from (x0, y0) to (x1, y1), endpoints
// included, using Bresenham's algorithm.
func line(x0, y0, x1, y1 int) []cell {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	out := make([]cell, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		out = append(out, cell{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// round converts a screen coordinate to a cell index.
func round(v float64) int {
	return int(math.Round(v))
}
