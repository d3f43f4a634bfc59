package event

import "context"

// Priority orders handlers for a topic. Lower values run first.
type Priority int

const (
	// PriorityCritical is for state owners that must observe changes before
	// anyone else, such as the selection reconciler on dataset changes.
	PriorityCritical Priority = 0

	// PriorityHigh is for renderers.
	PriorityHigh Priority = 100

	// PriorityNormal is the default.
	PriorityNormal Priority = 200

	// PriorityLow is for logging and scripts.
	PriorityLow Priority = 300
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityCritical:
		return "critical"
	case p <= PriorityHigh:
		return "high"
	case p <= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}

// Handler processes an event. The event is type-erased.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// FilterFunc decides whether an event reaches a subscription.
type FilterFunc func(event any) bool

// PanicHandler is told about handler panics.
type PanicHandler func(event any, recovered any)

// Stats contains bus counters.
type Stats struct {
	EventsPublished   uint64
	HandlersExecuted  uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}
