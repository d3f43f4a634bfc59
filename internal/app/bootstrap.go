package app

import (
	"context"
	"io"
	"os"

	"github.com/dshills/graphsel/internal/canvas"
	"github.com/dshills/graphsel/internal/config"
	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/graph"
	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/logging"
	"github.com/dshills/graphsel/internal/script"
	"github.com/dshills/graphsel/internal/selection"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      app.opts,
		initOrder: make([]string, 0, 8),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		init func() error
	}{
		{"config", b.initConfig},
		{"logging", b.initLogging},
		{"eventBus", b.initEventBus},
		{"graph", b.initGraph},
		{"selection", b.initSelection},
		{"pointer", b.initPointer},
		{"script", b.initScript},
		{"subscriptions", b.initSubscriptions},
		{"watcher", b.initWatcher},
	}

	for _, step := range steps {
		if err := step.init(); err != nil {
			b.cleanup()
			return err
		}
		b.initOrder = append(b.initOrder, step.name)
	}

	b.app.logger.Info("bootstrap complete", "components", len(b.initOrder))
	return nil
}

func (b *bootstrapper) initConfig() error {
	cfg, err := config.Load(b.opts.ConfigPath)
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	b.app.config = cfg
	return nil
}

// initLogging builds the logger. Headless runs log to stderr; interactive
// runs need LogFile or LogOutput since the terminal owns the screen.
func (b *bootstrapper) initLogging() error {
	level := b.app.config.Logging.Level
	if b.opts.LogLevel != "" {
		level = b.opts.LogLevel
	}

	var w io.Writer
	switch {
	case b.opts.LogOutput != nil:
		w = b.opts.LogOutput
	case b.opts.LogFile != "":
		f, err := os.OpenFile(b.opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return NewComponentError("logging", "open log file", err)
		}
		b.app.logFile = f
		w = f
	case b.opts.ScriptPath != "":
		w = os.Stderr
	}

	if w == nil {
		b.app.logger = logging.Discard()
	} else {
		b.app.logger = logging.New(w, level, b.app.config.Logging.Format)
	}
	return nil
}

func (b *bootstrapper) initEventBus() error {
	b.app.eventBus = event.NewBus(event.WithLogger(b.app.logger.With("component", "bus")))
	if err := b.app.eventBus.Start(); err != nil {
		return NewComponentError("event bus", "start", err)
	}
	return nil
}

func (b *bootstrapper) initGraph() error {
	b.app.graph = graph.NewBody(
		graph.WithBus(b.app.eventBus),
		graph.WithLogger(b.app.logger.With("component", "graph")),
	)
	if b.opts.GraphPath != "" {
		doc, err := graph.LoadFile(b.opts.GraphPath)
		if err != nil {
			return NewComponentError("graph", "load", err)
		}
		if err := b.app.graph.Load(context.Background(), doc); err != nil {
			return NewComponentError("graph", "load", err)
		}
		nodes, edges := b.app.graph.Len()
		b.app.logger.Info("graph loaded", "path", b.opts.GraphPath, "nodes", nodes, "edges", edges)
	}

	view := b.app.config.View
	b.app.viewport = canvas.NewViewport(view.OffsetX, view.OffsetY, view.Scale)
	return nil
}

func (b *bootstrapper) initSelection() error {
	h, err := selection.NewHandler(b.app.graph, b.app.viewport,
		selection.WithBus(b.app.eventBus),
		selection.WithLogger(b.app.logger.With("component", "selection")),
		selection.WithOptions(selectionOptions(b.app.config)),
	)
	if err != nil {
		return NewComponentError("selection", "create handler", err)
	}
	b.app.selection = h
	return nil
}

func (b *bootstrapper) initPointer() error {
	b.app.pointer = mouse.NewHandler(mouseConfig(b.app.config), b.app.selection, b.app.viewport)
	return nil
}

func (b *bootstrapper) initScript() error {
	b.app.script = script.NewRunner(script.Target{
		Selection: b.app.selection,
		Graph:     b.app.graph,
		Pointer:   b.app.pointer,
	}, script.WithLogger(b.app.logger.With("component", "script")))
	return nil
}

func (b *bootstrapper) initSubscriptions() error {
	b.app.subs = newSubscriptionManager(b.app)
	return b.app.subs.setupSubscriptions()
}

func (b *bootstrapper) initWatcher() error {
	if !b.opts.Watch || b.opts.ConfigPath == "" {
		return nil
	}
	w, err := config.NewWatcher(b.opts.ConfigPath, b.app.onConfigReload,
		config.WithWatcherLogger(b.app.logger.With("component", "config")),
	)
	if err != nil {
		return NewComponentError("config", "watch", err)
	}
	b.app.watcher = w
	return nil
}

// cleanup releases initialized components in reverse order.
// Called when bootstrap fails partway through.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		b.cleanupComponent(b.initOrder[i])
	}
	if b.app.logFile != nil {
		_ = b.app.logFile.Close()
		b.app.logFile = nil
	}
}

func (b *bootstrapper) cleanupComponent(component string) {
	switch component {
	case "eventBus":
		_ = b.app.eventBus.Stop()
	case "selection":
		_ = b.app.selection.Close()
	case "script":
		_ = b.app.script.Close()
	case "subscriptions":
		b.app.subs.cleanup()
	case "watcher":
		if b.app.watcher != nil {
			_ = b.app.watcher.Close()
		}
	}
}

// selectionOptions maps the selection section onto handler options.
func selectionOptions(cfg *config.Config) selection.Options {
	return selection.Options{
		Select:               cfg.Selection.Select,
		SelectConnectedEdges: cfg.Selection.SelectConnectedEdges,
	}
}

// mouseConfig maps the mouse section onto gesture recognition settings.
func mouseConfig(cfg *config.Config) mouse.Config {
	mc := mouse.DefaultConfig()
	mc.DoubleClickTime = cfg.Mouse.DoubleClickTime
	mc.DoubleClickDistance = cfg.Mouse.DoubleClickDistance
	mc.HoldTime = cfg.Mouse.HoldTime
	return mc
}
