package dispatch

import (
	"context"
	"time"
)

// Handler mirrors event.Handler to avoid an import cycle.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// Result describes one handler execution.
type Result struct {
	// Success is true if the handler returned nil without panicking.
	Success bool

	// Error is the handler's error or the context error when skipped.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the recovered value.
	PanicValue any

	// Duration is the time spent in the handler.
	Duration time.Duration

	// Skipped is true if the handler never ran because ctx was done.
	Skipped bool
}

// IsSuccess reports a clean run.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// PanicHandler receives recovered panics together with the stack.
type PanicHandler func(event any, panicValue any, stack []byte)
