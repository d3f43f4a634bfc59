package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/input/mouse"
	"github.com/dshills/graphsel/internal/renderer/backend"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func mouseEvent(x, y int, button backend.MouseButton, mod backend.ModMask, at time.Duration) backend.Event {
	return backend.Event{
		Type:        backend.EventMouse,
		When:        t0.Add(at),
		MouseX:      x,
		MouseY:      y,
		MouseButton: button,
		Mod:         mod,
	}
}

func keyEvent(k backend.Key, r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, Rune: r, When: t0}
}

func TestPointerTranslator(t *testing.T) {
	tests := []struct {
		name       string
		events     []backend.Event
		wantAction mouse.Action
		wantButton mouse.Button
	}{
		{
			name:       "motion without button",
			events:     []backend.Event{mouseEvent(1, 1, backend.MouseNone, 0, 0)},
			wantAction: mouse.ActionMove,
			wantButton: mouse.ButtonNone,
		},
		{
			name:       "first left report presses",
			events:     []backend.Event{mouseEvent(1, 1, backend.MouseLeft, 0, 0)},
			wantAction: mouse.ActionPress,
			wantButton: mouse.ButtonLeft,
		},
		{
			name: "held left report drags",
			events: []backend.Event{
				mouseEvent(1, 1, backend.MouseLeft, 0, 0),
				mouseEvent(2, 1, backend.MouseLeft, 0, time.Millisecond),
			},
			wantAction: mouse.ActionDrag,
			wantButton: mouse.ButtonLeft,
		},
		{
			name: "button up releases",
			events: []backend.Event{
				mouseEvent(1, 1, backend.MouseLeft, 0, 0),
				mouseEvent(1, 1, backend.MouseNone, 0, time.Millisecond),
			},
			wantAction: mouse.ActionRelease,
			wantButton: mouse.ButtonLeft,
		},
		{
			name:       "wheel",
			events:     []backend.Event{mouseEvent(1, 1, backend.MouseWheelDown, 0, 0)},
			wantAction: mouse.ActionPress,
			wantButton: mouse.ButtonScrollDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr pointerTranslator
			var got mouse.Event
			for _, ev := range tt.events {
				var ok bool
				got, ok = tr.translate(ev)
				require.True(t, ok)
			}
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, tt.wantButton, got.Button)
		})
	}
}

func TestPointerTranslatorIgnoresOtherButtons(t *testing.T) {
	var tr pointerTranslator
	_, ok := tr.translate(mouseEvent(0, 0, backend.MouseRight, 0, 0))
	assert.False(t, ok)
}

func TestPointerTranslatorCarriesPositionAndMods(t *testing.T) {
	var tr pointerTranslator
	ev, ok := tr.translate(mouseEvent(3, 4, backend.MouseLeft, backend.ModCtrl|backend.ModShift, 5*time.Millisecond))
	require.True(t, ok)

	assert.Equal(t, geom.Point{X: 3, Y: 4}, ev.Position)
	assert.True(t, ev.Modifiers.HasCtrl())
	assert.True(t, ev.Modifiers.HasShift())
	assert.False(t, ev.Modifiers.HasAlt())
	assert.Equal(t, t0.Add(5*time.Millisecond), ev.Timestamp)
}

func TestHandleEventClicks(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()
	sel := app.Selection()

	require.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 0, backend.MouseLeft, 0, 0)))
	require.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 0, backend.MouseNone, 0, 10*time.Millisecond)))
	assert.Equal(t, []string{"1"}, sel.GetSelectedNodes())
	assert.Equal(t, []string{"e12"}, sel.GetSelectedEdges())

	require.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 40, backend.MouseLeft, backend.ModCtrl, 20*time.Millisecond)))
	require.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 40, backend.MouseNone, backend.ModCtrl, 30*time.Millisecond)))
	assert.Equal(t, []string{"1", "3"}, sel.GetSelectedNodes())

	snap := app.Metrics().Snapshot()
	assert.Equal(t, uint64(1), snap.Gestures["click"])
	assert.Equal(t, uint64(1), snap.Gestures["additive-click"])
	assert.Equal(t, uint64(4), snap.InputCount)
	assert.Contains(t, app.Status(), "additive-click")
}

func TestHandleEventHover(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	require.NoError(t, app.HandleEvent(ctx, mouseEvent(40, 0, backend.MouseNone, 0, 0)))
	assert.Equal(t, []string{"2"}, app.Selection().HoveredNodes())
	assert.Contains(t, app.Status(), "hover node 2")

	require.NoError(t, app.HandleEvent(ctx, mouseEvent(20, 20, backend.MouseNone, 0, time.Millisecond)))
	assert.Empty(t, app.Selection().HoveredNodes())
	assert.Contains(t, app.Status(), "hover -")
}

func TestFrameDetectsHold(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	require.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 0, backend.MouseLeft, 0, 0)))
	app.Frame(ctx, t0.Add(100*time.Millisecond))
	assert.Empty(t, app.Selection().GetSelectedNodes())

	app.Frame(ctx, t0.Add(time.Second))
	assert.Equal(t, []string{"1"}, app.Selection().GetSelectedNodes())
	assert.Equal(t, uint64(1), app.Metrics().Snapshot().Gestures["hold"])
}

func TestHandleKeys(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()
	sel := app.Selection()

	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyRune, 'a')))
	assert.Equal(t, []string{"1", "2", "3"}, sel.GetSelectedNodes())

	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyEscape, 0)))
	assert.True(t, sel.SelectionIsEmpty())

	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyLeft, 0)))
	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyDown, 0)))
	assert.Equal(t, panStepX, app.Viewport().OffsetX)
	assert.Equal(t, -panStepY, app.Viewport().OffsetY)

	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyRune, '+')))
	assert.InDelta(t, 1.1, app.Viewport().Scale, 1e-9)

	require.NoError(t, app.HandleEvent(ctx, keyEvent(backend.KeyRune, '0')))
	assert.Equal(t, 0.0, app.Viewport().OffsetX)
	assert.Equal(t, 1.0, app.Viewport().Scale)

	assert.ErrorIs(t, app.HandleEvent(ctx, keyEvent(backend.KeyRune, 'q')), ErrQuit)
	assert.ErrorIs(t, app.HandleEvent(ctx, keyEvent(backend.KeyCtrlC, 0)), ErrQuit)
}

func TestHandleEventIgnoresOthers(t *testing.T) {
	app := newTestApp(t, Options{})
	ctx := context.Background()

	assert.NoError(t, app.HandleEvent(ctx, backend.Event{Type: backend.EventResize, Width: 10, Height: 10}))
	assert.NoError(t, app.HandleEvent(ctx, backend.Event{Type: backend.EventInterrupt}))
	assert.NoError(t, app.HandleEvent(ctx, mouseEvent(0, 0, backend.MouseMiddle, 0, 0)))
	assert.True(t, app.Selection().SelectionIsEmpty())
}
