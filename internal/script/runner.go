package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/selection"
)

// Selector is the selection API scripts call directly.
// *selection.Handler implements it.
type Selector interface {
	SelectNodes(ctx context.Context, ids []string, highlightEdges bool) error
	SelectEdges(ctx context.Context, ids []string) error
	UnselectAll(ctx context.Context)
	GetSelection() selection.Selection
	HoveredNodes() []string
	HoveredEdges() []string
	SetOptions(m map[string]any)
	SelectedObjectCount() int
}

// Graph is the dataset mutation surface. *graph.Body implements it.
type Graph interface {
	RemoveNode(ctx context.Context, id string) error
	RemoveEdge(ctx context.Context, id string) error
	MoveNode(id string, x, y float64) error
}

// Pointer recognises gestures. *mouse.Handler implements it.
type Pointer interface {
	Handle(ctx context.Context, ev mouse.Event) mouse.Gesture
	Tick(ctx context.Context, now time.Time) mouse.Gesture
	Config() mouse.Config
}

// Target bundles what a script can act on.
type Target struct {
	Selection Selector
	Graph     Graph
	Pointer   Pointer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used by graph.log and run reports.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock sets the start of the virtual pointer clock.
func WithClock(start time.Time) Option {
	return func(r *Runner) {
		r.now = start
	}
}

// Runner executes Lua scripts against a Target.
//
// gopher-lua states are not goroutine safe; the mutex serialises runs.
type Runner struct {
	L *lua.LState

	mu     sync.Mutex
	target Target
	logger *slog.Logger
	now    time.Time
	closed bool
}

// NewRunner creates a runner with the graph module installed.
func NewRunner(target Target, opts ...Option) *Runner {
	r := &Runner{
		target: target,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	L.SetGlobal("graph", L.SetFuncs(L.NewTable(), r.exports()))
	r.L = L

	return r
}

// openSafeLibraries opens only the libraries without host access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base opens these; they reach the file system.
	for _, name := range []string{"dofile", "loadfile"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Run executes a Lua chunk. Cancelling ctx aborts the script.
func (r *Runner) Run(ctx context.Context, code string) error {
	return r.run(ctx, "chunk", func() error {
		return r.L.DoString(code)
	})
}

// RunFile executes a Lua file.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.run(ctx, path, func() error {
		return r.L.DoFile(path)
	})
}

func (r *Runner) run(ctx context.Context, name string, fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	start := time.Now()
	err := doWithRecovery(fn)
	if err != nil {
		r.logger.Warn("script failed", "script", name, "error", err)
		return fmt.Errorf("run %s: %w", name, err)
	}
	r.logger.Debug("script finished", "script", name, "elapsed", time.Since(start))
	return nil
}

// doWithRecovery executes a function with panic recovery.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}

// Close releases the Lua state. Further runs return ErrClosed.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.L.Close()
	r.closed = true
	return nil
}
