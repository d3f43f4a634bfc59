package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/renderer/backend"
)

// Key bindings:
//
//	q, Ctrl-C      quit
//	Esc            clear the selection
//	a              select every node
//	arrows         pan the view
//	+ / -          zoom around the screen center
//	0              reset the view to the configured one
const (
	panStepX = 4.0
	panStepY = 2.0
)

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyEscape:
		app.selection.UnselectAll(ctx)
	case backend.KeyUp:
		app.pan(0, panStepY)
	case backend.KeyDown:
		app.pan(0, -panStepY)
	case backend.KeyLeft:
		app.pan(panStepX, 0)
	case backend.KeyRight:
		app.pan(-panStepX, 0)
	case backend.KeyRune:
		return app.handleRune(ctx, ev.Rune)
	}
	return nil
}

func (app *Application) handleRune(ctx context.Context, r rune) error {
	switch r {
	case 'q':
		return ErrQuit
	case 'a':
		if err := app.selection.SelectNodes(ctx, app.graph.NodeIndices(), false); err != nil {
			app.logger.Warn("select all", "err", err)
		}
	case '+', '=':
		app.zoom(1 + app.pointer.Config().ZoomStep)
	case '-':
		app.zoom(1 / (1 + app.pointer.Config().ZoomStep))
	case '0':
		view := app.Config().View
		app.viewport.OffsetX, app.viewport.OffsetY, app.viewport.Scale = view.OffsetX, view.OffsetY, view.Scale
		app.markDirty()
	}
	return nil
}

func (app *Application) pan(dx, dy float64) {
	app.viewport.Pan(dx, dy)
	app.markDirty()
}

func (app *Application) zoom(factor float64) {
	center := geom.Point{}
	if app.backend != nil {
		w, h := app.backend.Size()
		center = geom.Point{X: float64(w) / 2, Y: float64(h) / 2}
	}
	app.viewport.ZoomAt(center, factor)
	app.markDirty()
}

// Status summarises selection, hover and view for the status line.
func (app *Application) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "selected %d nodes %d edges", app.selection.SelectedNodeCount(), app.selection.SelectedEdgeCount())

	hovered := "-"
	if nodes := app.selection.HoveredNodes(); len(nodes) > 0 {
		hovered = "node " + nodes[0]
	} else if edges := app.selection.HoveredEdges(); len(edges) > 0 {
		hovered = "edge " + edges[0]
	}
	fmt.Fprintf(&b, " | hover %s | zoom %.2f", hovered, app.viewport.Scale)

	if app.lastGesture != 0 {
		fmt.Fprintf(&b, " | %s", app.lastGesture)
	}
	return b.String()
}
