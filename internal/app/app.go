// Package app provides the main application structure and coordination
// for graphsel. It wires the graph body, viewport, selection handler,
// pointer input, script runner and renderer together and manages the
// application lifecycle.
package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dshills/graphsel/internal/canvas"
	"github.com/dshills/graphsel/internal/config"
	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/events"
	"github.com/dshills/graphsel/internal/graph"
	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/renderer"
	"github.com/dshills/graphsel/internal/renderer/backend"
	"github.com/dshills/graphsel/internal/script"
	"github.com/dshills/graphsel/internal/selection"
)

// Application is the central coordinator for all graphsel components.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	logger   *slog.Logger
	logFile  io.Closer
	eventBus event.Bus
	config   *config.Config
	watcher  *config.Watcher
	configCh chan *config.Config

	// Graph components
	graph     *graph.Body
	viewport  *canvas.Viewport
	selection *selection.Handler
	pointer   *mouse.Handler
	script    *script.Runner

	// Display
	backend  backend.Backend
	renderer *renderer.Renderer
	input    *pointerTranslator

	subs    *subscriptionManager
	metrics *Metrics

	// State
	running      atomic.Bool
	loop         sync.WaitGroup
	done         chan struct{}
	shutdownOnce sync.Once
	lastGesture  mouse.Gesture

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// GraphPath is a YAML or JSON graph document loaded at startup.
	GraphPath string

	// ScriptPath is a Lua script for headless runs.
	ScriptPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogFile receives log output. Interactive runs discard logs unless it
	// is set, since the terminal owns the screen.
	LogFile string

	// LogOutput, when set, takes precedence over LogFile.
	LogOutput io.Writer

	// Watch reloads ConfigPath when it changes on disk.
	Watch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:     opts,
		done:     make(chan struct{}),
		configCh: make(chan *config.Config, 1),
		metrics:  NewMetrics(),
		input:    &pointerTranslator{},
	}

	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the display backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the interactive main loop and blocks until the user quits,
// in which case ErrQuit is returned, or Shutdown is called.
func (app *Application) Run() error {
	app.loop.Add(1)
	defer app.loop.Done()
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b, app.graph, app.viewport, renderer.DefaultOptions())
	app.mu.Unlock()

	app.logger.Info("interactive session started")
	return app.eventLoop(context.Background())
}

// RunScript executes the Lua script at path, or Options.ScriptPath when
// path is empty, against the loaded graph.
func (app *Application) RunScript(ctx context.Context, path string) error {
	if path == "" {
		path = app.opts.ScriptPath
	}
	if path == "" {
		return ErrNoScript
	}
	if err := app.script.RunFile(ctx, path); err != nil {
		return NewComponentError("script", "run", err)
	}
	return nil
}

// SelectionJSON renders the current selection as {"nodes":[...],"edges":[...]}.
func (app *Application) SelectionJSON() (string, error) {
	s := app.selection.GetSelection()
	return events.SelectionChanged{Nodes: s.Nodes, Edges: s.Edges}.JSON()
}

// Shutdown stops the main loop, if running, and releases every component
// in reverse initialization order. Safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)
		app.loop.Wait()

		if err := app.shutdown(); err != nil {
			app.logger.Warn("shutdown", "err", err)
		}
		app.logger.Info("shutdown complete", app.metrics.Snapshot().LogAttrs()...)
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}

func (app *Application) shutdown() error {
	var errs shutdownErrors

	if app.watcher != nil {
		errs.add(app.watcher.Close())
	}
	if app.subs != nil {
		app.subs.cleanup()
	}
	if app.script != nil {
		errs.add(app.script.Close())
	}
	if app.selection != nil {
		errs.add(app.selection.Close())
	}
	if app.eventBus != nil {
		errs.add(app.eventBus.Stop())
	}
	return errs.err()
}

// IsRunning returns true if the interactive loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// EventBus returns the event bus.
func (app *Application) EventBus() event.Bus {
	return app.eventBus
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Graph returns the graph body.
func (app *Application) Graph() *graph.Body {
	return app.graph
}

// Viewport returns the viewport.
func (app *Application) Viewport() *canvas.Viewport {
	return app.viewport
}

// Selection returns the selection handler.
func (app *Application) Selection() *selection.Handler {
	return app.selection
}

// Pointer returns the gesture recognizer.
func (app *Application) Pointer() *mouse.Handler {
	return app.pointer
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *slog.Logger {
	return app.logger
}
