package mouse

import (
	"math"
	"time"

	"github.com/dshills/graphsel/internal/geom"
)

// clickTracker counts consecutive clicks for double click detection.
// The count wraps back to 1 after a double click.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastPos   geom.Point
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration, maxDistance float64) *clickTracker {
	return &clickTracker{maxTime: maxTime, maxDistance: maxDistance}
}

// record registers a click and returns the click count, 1 or 2.
func (t *clickTracker) record(pos geom.Point, ts time.Time) int {
	if t.inSequence(pos, ts) && t.lastCount < 2 {
		t.lastCount++
	} else {
		t.lastCount = 1
	}
	t.lastPos = pos
	t.lastTime = ts
	return t.lastCount
}

func (t *clickTracker) inSequence(pos geom.Point, ts time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() || ts.IsZero() {
		return false
	}
	// Negative elapsed time means clock skew.
	elapsed := ts.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return distance(pos, t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = geom.Point{}
}

// distance is the Manhattan distance between two screen points.
func distance(a, b geom.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
