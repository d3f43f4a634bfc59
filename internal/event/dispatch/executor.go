package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor runs a single handler with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates an executor. A nil panic handler discards panics.
func NewExecutor(h PanicHandler) *Executor {
	return &Executor{panicHandler: h}
}

// Execute runs handler with event. It never panics.
func (e *Executor) Execute(ctx context.Context, event any, handler Handler) (result Result) {
	if err := ctx.Err(); err != nil {
		return Result{Error: err, Skipped: true}
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		result.Success = false
		result.Panicked = true
		result.PanicValue = r
		if e.panicHandler != nil {
			func() {
				defer func() { _ = recover() }()
				e.panicHandler(event, r, stack)
			}()
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		result.Error = err
		return result
	}
	result.Success = true
	return result
}
