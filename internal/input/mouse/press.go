package mouse

import (
	"time"

	"github.com/dshills/graphsel/internal/geom"
)

// pressTracker follows the left button from press to release.
type pressTracker struct {
	active    bool
	dragging  bool
	held      bool
	startPos  geom.Point
	lastPos   geom.Point
	startTime time.Time
	mods      Modifier
}

func newPressTracker() *pressTracker {
	return &pressTracker{}
}

func (t *pressTracker) start(ev Event) {
	*t = pressTracker{
		active:    true,
		startPos:  ev.Position,
		lastPos:   ev.Position,
		startTime: ev.Timestamp,
		mods:      ev.Modifiers,
	}
}

func (t *pressTracker) end() {
	*t = pressTracker{}
}

// holdDue reports whether a press that has not been dragged has lasted
// holdTime and has not fired a hold yet.
func (t *pressTracker) holdDue(now time.Time, holdTime time.Duration) bool {
	if !t.active || t.dragging || t.held || holdTime <= 0 {
		return false
	}
	return now.Sub(t.startTime) >= holdTime
}
