package dispatch

import (
	"context"
	"sync/atomic"
	"time"
)

// SyncDispatcher executes handlers in the caller's goroutine.
type SyncDispatcher struct {
	executor *Executor

	dispatched  atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewSyncDispatcher creates a dispatcher reporting panics to h.
func NewSyncDispatcher(h PanicHandler) *SyncDispatcher {
	return &SyncDispatcher{executor: NewExecutor(h)}
}

// Dispatch runs handler and blocks until it returns.
func (d *SyncDispatcher) Dispatch(ctx context.Context, event any, handler Handler) Result {
	d.dispatched.Add(1)
	result := d.executor.Execute(ctx, event, handler)
	d.totalTimeNs.Add(result.Duration.Nanoseconds())

	switch {
	case result.Panicked:
		d.panicked.Add(1)
	case result.Error != nil && !result.Skipped:
		d.failed.Add(1)
	}
	return result
}

// Stats returns cumulative counters.
func (d *SyncDispatcher) Stats() Stats {
	return Stats{
		Dispatched:    d.dispatched.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		TotalDuration: time.Duration(d.totalTimeNs.Load()),
	}
}

// Stats holds dispatcher counters.
type Stats struct {
	Dispatched    uint64
	Failed        uint64
	Panicked      uint64
	TotalDuration time.Duration
}
