package mouse

import (
	"context"
	"sync"
	"time"

	"github.com/dshills/graphsel/internal/event/events"
	"github.com/dshills/graphsel/internal/event/topic"
	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/graph"
)

// Button represents a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// IsScroll returns true for wheel buttons.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown
}

// Action represents the type of mouse action.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
	// ActionMove is motion with no button held.
	ActionMove
	// ActionDrag is motion with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Modifier is a set of keyboard modifiers held during a pointer event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

func (m Modifier) HasShift() bool { return m&ModShift != 0 }
func (m Modifier) HasCtrl() bool  { return m&ModCtrl != 0 }
func (m Modifier) HasAlt() bool   { return m&ModAlt != 0 }
func (m Modifier) HasMeta() bool  { return m&ModMeta != 0 }

// Additive reports whether the modifiers ask for additive selection.
func (m Modifier) Additive() bool {
	return m.HasCtrl() || m.HasMeta() || m.HasShift()
}

// Event is a raw pointer event in screen coordinates.
type Event struct {
	Position  geom.Point
	Button    Button
	Modifiers Modifier
	Action    Action
	Timestamp time.Time
}

// Gesture is what a Handler recognised from one or more events.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureClick
	GestureAdditiveClick
	GestureDoubleClick
	GestureHold
	GestureHover
	GesturePan
	GestureZoom
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureClick:
		return "click"
	case GestureAdditiveClick:
		return "additive-click"
	case GestureDoubleClick:
		return "doubleclick"
	case GestureHold:
		return "hold"
	case GestureHover:
		return "hover"
	case GesturePan:
		return "pan"
	case GestureZoom:
		return "zoom"
	default:
		return "none"
	}
}

// Selector is the selection surface driven by pointer gestures.
// *selection.Handler implements it.
type Selector interface {
	SelectOnPoint(ctx context.Context, pointer geom.Point) bool
	SelectAdditionalOnPoint(ctx context.Context, pointer geom.Point) bool
	HoverOnPoint(ctx context.Context, pointer geom.Point) graph.Element
	GenerateClickEvent(ctx context.Context, t topic.Topic, pointer geom.Point) error
}

// Navigator moves the view. *canvas.Viewport implements it.
type Navigator interface {
	Pan(dx, dy float64)
	ZoomAt(fixed geom.Point, factor float64)
}

// Config configures gesture recognition.
type Config struct {
	// DoubleClickTime is the maximum time between the clicks of a double click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum Manhattan distance between the
	// clicks of a double click. A pressed pointer that moves further than
	// this starts a drag.
	DoubleClickDistance float64

	// HoldTime is how long a press must last to count as a hold.
	// Zero disables holds.
	HoldTime time.Duration

	// ZoomStep is the relative zoom applied per wheel notch.
	ZoomStep float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     500 * time.Millisecond,
		DoubleClickDistance: 2,
		HoldTime:            500 * time.Millisecond,
		ZoomStep:            0.1,
	}
}

// Handler recognises gestures and applies them to a Selector and Navigator.
type Handler struct {
	mu       sync.Mutex
	config   Config
	selector Selector
	nav      Navigator

	clicks *clickTracker
	press  *pressTracker
	hover  graph.Element
}

// NewHandler creates a handler. nav may be nil, which disables pan and zoom.
func NewHandler(config Config, selector Selector, nav Navigator) *Handler {
	return &Handler{
		config:   config,
		selector: selector,
		nav:      nav,
		clicks:   newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		press:    newPressTracker(),
	}
}

// Config returns the current configuration.
func (h *Handler) Config() Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

// SetConfig replaces the configuration. A pending click sequence is dropped.
func (h *Handler) SetConfig(config Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.config = config
	h.clicks = newClickTracker(config.DoubleClickTime, config.DoubleClickDistance)
}

// Handle processes one event and returns the recognised gesture.
// Events with a zero timestamp are stamped with the current time.
func (h *Handler) Handle(ctx context.Context, ev Event) Gesture {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	switch ev.Action {
	case ActionPress:
		if ev.Button.IsScroll() {
			return h.handleScroll(ev)
		}
		if ev.Button == ButtonLeft {
			h.press.start(ev)
		}
	case ActionRelease:
		return h.handleRelease(ctx, ev)
	case ActionMove:
		return h.handleMove(ctx, ev)
	case ActionDrag:
		return h.handleDrag(ev)
	}
	return GestureNone
}

// Tick fires a hold for a press that has lasted HoldTime by now.
func (h *Handler) Tick(ctx context.Context, now time.Time) Gesture {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.press.holdDue(now, h.config.HoldTime) {
		return GestureNone
	}
	return h.hold(ctx)
}

// Reset clears all tracking state.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clicks.reset()
	h.press.end()
	h.hover = nil
}

// IsPressed reports whether the left button is down.
func (h *Handler) IsPressed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.press.active
}

// Hovered returns the element under the pointer after the last move, or nil.
func (h *Handler) Hovered() graph.Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hover
}

func (h *Handler) handleRelease(ctx context.Context, ev Event) Gesture {
	if !h.press.active || ev.Button != ButtonLeft {
		return GestureNone
	}
	defer h.press.end()

	if h.press.dragging || h.press.held {
		return GestureNone
	}
	if h.press.holdDue(ev.Timestamp, h.config.HoldTime) {
		return h.hold(ctx)
	}

	pos := h.press.startPos
	if h.clicks.record(pos, ev.Timestamp) == 2 {
		h.emit(ctx, events.TopicDoubleClick, pos)
		return GestureDoubleClick
	}
	if h.press.mods.Additive() {
		h.selector.SelectAdditionalOnPoint(ctx, pos)
		h.emit(ctx, events.TopicClick, pos)
		return GestureAdditiveClick
	}
	h.selector.SelectOnPoint(ctx, pos)
	h.emit(ctx, events.TopicClick, pos)
	return GestureClick
}

func (h *Handler) hold(ctx context.Context) Gesture {
	h.press.held = true
	pos := h.press.startPos
	h.selector.SelectAdditionalOnPoint(ctx, pos)
	h.emit(ctx, events.TopicHold, pos)
	h.clicks.reset()
	return GestureHold
}

func (h *Handler) handleMove(ctx context.Context, ev Event) Gesture {
	h.hover = h.selector.HoverOnPoint(ctx, ev.Position)
	if h.hover == nil {
		return GestureNone
	}
	return GestureHover
}

func (h *Handler) handleDrag(ev Event) Gesture {
	if !h.press.active {
		return GestureNone
	}
	if !h.press.dragging {
		if distance(ev.Position, h.press.startPos) <= h.config.DoubleClickDistance {
			return GestureNone
		}
		h.press.dragging = true
	}
	delta := ev.Position.Sub(h.press.lastPos)
	h.press.lastPos = ev.Position
	if h.nav == nil {
		return GestureNone
	}
	h.nav.Pan(delta.X, delta.Y)
	return GesturePan
}

func (h *Handler) handleScroll(ev Event) Gesture {
	if h.nav == nil || h.config.ZoomStep <= 0 {
		return GestureNone
	}
	factor := 1 + h.config.ZoomStep
	if ev.Button == ButtonScrollDown {
		factor = 1 / factor
	}
	h.nav.ZoomAt(ev.Position, factor)
	return GestureZoom
}

// emit publishes a pointer event. The selector logs publish failures and a
// gesture is applied either way.
func (h *Handler) emit(ctx context.Context, t topic.Topic, pos geom.Point) {
	_ = h.selector.GenerateClickEvent(ctx, t, pos)
}
