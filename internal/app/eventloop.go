package app

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dshills/graphsel/internal/config"
	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/logging"
	"github.com/dshills/graphsel/internal/renderer/backend"
)

const (
	targetFPS = 60
	frameTime = time.Second / targetFPS
)

// eventLoop is the main application loop. Input, config reloads and frame
// ticks are all handled on this goroutine, which owns the selection state.
func (app *Application) eventLoop(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, app.logger)

	stop := make(chan struct{})
	input := app.startInputPolling(stop)
	defer func() {
		close(stop)
		// Wake the poller blocked in PollEvent so it sees stop.
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, When: time.Now()})
	}()

	frameTicker := time.NewTicker(frameTime)
	defer frameTicker.Stop()

	app.Frame(ctx, time.Now())

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-input:
			if !ok {
				return nil
			}
			if err := app.HandleEvent(ctx, ev); err != nil {
				return err
			}

		case cfg := <-app.configCh:
			app.ApplyConfig(cfg)

		case now := <-frameTicker.C:
			app.Frame(ctx, now)
		}
	}
}

// Frame advances time based gestures and draws if anything changed.
func (app *Application) Frame(ctx context.Context, now time.Time) {
	if g := app.pointer.Tick(ctx, now); g != mouse.GestureNone {
		app.recordGesture(g)
	}

	r := app.Renderer()
	if r == nil || !r.NeedsRedraw() {
		return
	}
	timer := StartTimer()
	r.Render(app.Status())
	app.metrics.RecordFrame(timer.Elapsed())
}

// HandleEvent processes one backend event. It returns ErrQuit when the
// user asked to exit. A panic while handling is logged and swallowed so a
// single bad event cannot take down the session.
func (app *Application) HandleEvent(ctx context.Context, ev backend.Event) (err error) {
	timer := StartTimer()
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("event handler panicked", "err", &PanicError{Value: r, Stack: string(debug.Stack())})
			err = nil
		}
		app.metrics.RecordInput(timer.Elapsed())
	}()

	switch ev.Type {
	case backend.EventResize:
		app.markDirty()
	case backend.EventKey:
		return app.handleKeyEvent(ctx, ev)
	case backend.EventMouse:
		app.handleMouseEvent(ctx, ev)
	}
	return nil
}

func (app *Application) handleMouseEvent(ctx context.Context, ev backend.Event) {
	mev, ok := app.input.translate(ev)
	if !ok {
		return
	}
	g := app.pointer.Handle(ctx, mev)
	if g == mouse.GestureNone {
		return
	}
	app.recordGesture(g)
	if g == mouse.GesturePan || g == mouse.GestureZoom {
		app.markDirty()
	}
}

func (app *Application) recordGesture(g mouse.Gesture) {
	app.metrics.RecordGesture(g)
	app.lastGesture = g
	app.logger.Debug("gesture", "kind", g.String())
	// The status line shows the last gesture.
	app.markDirty()
}

func (app *Application) markDirty() {
	if r := app.Renderer(); r != nil {
		r.MarkDirty()
	}
}

// onConfigReload runs on the watcher goroutine. The newest configuration
// replaces any reload the loop has not picked up yet.
func (app *Application) onConfigReload(cfg *config.Config) {
	for {
		select {
		case app.configCh <- cfg:
			return
		default:
		}
		select {
		case <-app.configCh:
		default:
		}
	}
}

// ApplyConfig makes cfg the configuration in effect. Selection and pointer
// settings apply immediately; the viewport is left where the user put it.
func (app *Application) ApplyConfig(cfg *config.Config) {
	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.selection.SetOptions(cfg.SelectionOptions())
	app.pointer.SetConfig(mouseConfig(cfg))
	app.logger.Info("config applied",
		"select", cfg.Selection.Select,
		"selectConnectedEdges", cfg.Selection.SelectConnectedEdges,
		"doubleClickTime", cfg.Mouse.DoubleClickTime,
		"holdTime", cfg.Mouse.HoldTime)
	app.markDirty()
}

// startInputPolling starts a goroutine that forwards backend events until
// stop is closed. PollEvent blocks, so the caller posts an interrupt after
// closing stop.
func (app *Application) startInputPolling(stop <-chan struct{}) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := app.backend.PollEvent()

			select {
			case <-stop:
				return
			default:
			}
			if ev.Type == backend.EventNone || ev.Type == backend.EventInterrupt {
				continue
			}

			select {
			case events <- ev:
			case <-stop:
				return
			default:
				app.metrics.RecordInputDropped()
			}
		}
	}()

	return events
}

// pointerTranslator turns terminal mouse reports, which carry the held
// button on every event, into press, drag, release and move edges.
type pointerTranslator struct {
	pressed bool
}

func (t *pointerTranslator) translate(ev backend.Event) (mouse.Event, bool) {
	out := mouse.Event{
		Position:  geom.Point{X: float64(ev.MouseX), Y: float64(ev.MouseY)},
		Modifiers: translateMods(ev.Mod),
		Timestamp: ev.When,
	}

	switch ev.MouseButton {
	case backend.MouseWheelUp:
		out.Button, out.Action = mouse.ButtonScrollUp, mouse.ActionPress
	case backend.MouseWheelDown:
		out.Button, out.Action = mouse.ButtonScrollDown, mouse.ActionPress
	case backend.MouseLeft:
		out.Button = mouse.ButtonLeft
		if t.pressed {
			out.Action = mouse.ActionDrag
		} else {
			out.Action = mouse.ActionPress
			t.pressed = true
		}
	case backend.MouseNone:
		if t.pressed {
			out.Button, out.Action = mouse.ButtonLeft, mouse.ActionRelease
			t.pressed = false
		} else {
			out.Action = mouse.ActionMove
		}
	default:
		return mouse.Event{}, false
	}
	return out, true
}

func translateMods(m backend.ModMask) mouse.Modifier {
	mods := mouse.ModNone
	if m.Has(backend.ModShift) {
		mods |= mouse.ModShift
	}
	if m.Has(backend.ModCtrl) {
		mods |= mouse.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= mouse.ModAlt
	}
	if m.Has(backend.ModMeta) {
		mods |= mouse.ModMeta
	}
	return mods
}
