package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/graphsel/internal/input/mouse"
)

// Metrics counts frames, input events and recognised gestures.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	// Input handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputDropped atomic.Uint64

	// Gestures by kind, indexed by mouse.Gesture
	gestures [mouse.GestureZoom + 1]atomic.Uint64

	selectionChanges atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the time taken to draw a frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records input processing timing.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordInputDropped records an input event lost to a full queue.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordGesture counts a recognised gesture. GestureNone is ignored.
func (m *Metrics) RecordGesture(g mouse.Gesture) {
	if g <= mouse.GestureNone || int(g) >= len(m.gestures) {
		return
	}
	m.gestures[g].Add(1)
}

// RecordSelectionChange counts a published selection change.
func (m *Metrics) RecordSelectionChange() {
	m.selectionChanges.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	inputCount := m.inputCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	var avgInputNs int64
	if inputCount > 0 {
		avgInputNs = m.inputTotalNs.Load() / int64(inputCount)
	}

	gestures := make(map[string]uint64)
	for g := range m.gestures {
		if n := m.gestures[g].Load(); n > 0 {
			gestures[mouse.Gesture(g).String()] = n
		}
	}

	return MetricsSnapshot{
		Uptime:           time.Since(m.startTime),
		FrameCount:       frameCount,
		AvgFrameTimeNs:   avgFrameNs,
		MaxFrameTimeNs:   m.frameMaxNs.Load(),
		InputCount:       inputCount,
		AvgInputTimeNs:   avgInputNs,
		InputDropped:     m.inputDropped.Load(),
		Gestures:         gestures,
		SelectionChanges: m.selectionChanges.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime           time.Duration
	FrameCount       uint64
	AvgFrameTimeNs   int64
	MaxFrameTimeNs   int64
	InputCount       uint64
	AvgInputTimeNs   int64
	InputDropped     uint64
	Gestures         map[string]uint64
	SelectionChanges uint64
}

// AvgFPS returns the average frames per second.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}

// LogAttrs flattens the snapshot into slog key value pairs.
func (s MetricsSnapshot) LogAttrs() []any {
	attrs := []any{
		"uptime", s.Uptime.Round(time.Millisecond),
		"frames", s.FrameCount,
		"inputs", s.InputCount,
		"inputs_dropped", s.InputDropped,
		"selection_changes", s.SelectionChanges,
	}
	for name, n := range s.Gestures {
		attrs = append(attrs, "gesture_"+name, n)
	}
	return attrs
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
