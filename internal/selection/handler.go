package selection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dshills/graphsel/internal/canvas"
	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/events"
	"github.com/dshills/graphsel/internal/event/topic"
	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/graph"
)

const eventSource = "selection"

// Selection is a snapshot of the selected ids.
type Selection struct {
	Nodes []string
	Edges []string
}

// Handler is the selection facade. It turns pointer gestures and id lists
// into selection changes and publishes the results on the bus.
//
// Handler is not safe for concurrent use and must not be called from one
// of its own event subscribers.
type Handler struct {
	data    graph.Dataset
	options Options
	bus     event.Bus
	logger  *slog.Logger

	query      *Query
	selection  *Store
	hover      *HoverStore
	cascade    Cascade
	reconciler *Reconciler

	dataSub event.Subscription
}

// NewHandler creates a handler over data. When a bus is configured the
// handler subscribes to events.TopicDataChanged at critical priority so
// stale ids are pruned before other subscribers run.
func NewHandler(data graph.Dataset, view canvas.Transformer, opts ...HandlerOption) (*Handler, error) {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handler{
		data:    data,
		options: cfg.options,
		bus:     cfg.bus,
		logger:  cfg.logger,
		query:   NewQuery(data, view),
		cascade: Cascade{data: data},
	}
	h.selection = NewStore(data, &h.options)
	h.hover = NewHoverStore(data)
	h.reconciler = NewReconciler(data, h.selection, h.hover, h.logger)

	if h.bus != nil {
		sub, err := event.SubscribePayload(h.bus, events.TopicDataChanged, h.onDataChanged,
			event.WithPriority(event.PriorityCritical))
		if err != nil {
			return nil, fmt.Errorf("subscribe to data changes: %w", err)
		}
		h.dataSub = sub
	}
	return h, nil
}

// Close detaches the handler from the bus.
func (h *Handler) Close() error {
	if h.dataSub == nil {
		return nil
	}
	err := h.bus.Unsubscribe(h.dataSub)
	h.dataSub = nil
	return err
}

// Options returns the current options.
func (h *Handler) Options() Options {
	return h.options
}

// SetOptions merges the recognised keys of m into the options. Unknown keys
// are ignored.
func (h *Handler) SetOptions(m map[string]any) {
	if skipped := h.options.merge(m); len(skipped) > 0 {
		h.logger.Warn("ignored non boolean selection options", "keys", skipped)
	}
	h.logger.Debug("selection options set",
		"select", h.options.Select,
		"selectConnectedEdges", h.options.SelectConnectedEdges)
}

// SelectOnPoint replaces the selection with the element under the pointer.
// It reports whether anything is selected afterwards.
func (h *Handler) SelectOnPoint(ctx context.Context, pointer geom.Point) bool {
	if !h.options.Select {
		return false
	}
	h.selection.Clear()
	if el := h.query.ElementAt(pointer); el != nil {
		h.selection.Select(el, false)
		h.logger.Debug("selected on point", "kind", el.Kind(), "id", el.ID())
	}
	h.changed(ctx)
	return !h.selection.IsEmpty()
}

// SelectAdditionalOnPoint toggles the element under the pointer without
// touching the rest of the selection. Deselecting a node also deselects its
// edges. It reports whether the selection changed.
func (h *Handler) SelectAdditionalOnPoint(ctx context.Context, pointer geom.Point) bool {
	if !h.options.Select {
		return false
	}
	el := h.query.ElementAt(pointer)
	if el == nil {
		return false
	}
	if el.Selected() {
		h.selection.Deselect(el)
		if n, ok := el.(graph.Node); ok {
			h.cascade.DeselectEdgesOf(n, h.selection)
		}
		h.logger.Debug("deselected on point", "kind", el.Kind(), "id", el.ID())
	} else {
		h.selection.Select(el, false)
		h.logger.Debug("added on point", "kind", el.Kind(), "id", el.ID())
	}
	h.changed(ctx)
	return true
}

// SelectNodes replaces the selection with the given nodes in order. With
// highlightEdges their edges are selected regardless of
// SelectConnectedEdges. Every id is checked before anything changes; an
// unknown id fails with a *NotFoundError.
func (h *Handler) SelectNodes(ctx context.Context, ids []string, highlightEdges bool) error {
	nodes := make([]graph.Element, 0, len(ids))
	for _, id := range ids {
		n, ok := h.data.Node(id)
		if !ok {
			return &NotFoundError{Kind: graph.KindNode, ID: id}
		}
		nodes = append(nodes, n)
	}
	return h.selectAll(ctx, nodes, highlightEdges)
}

// SelectEdges replaces the selection with the given edges in order.
func (h *Handler) SelectEdges(ctx context.Context, ids []string) error {
	edges := make([]graph.Element, 0, len(ids))
	for _, id := range ids {
		e, ok := h.data.Edge(id)
		if !ok {
			return &NotFoundError{Kind: graph.KindEdge, ID: id}
		}
		edges = append(edges, e)
	}
	return h.selectAll(ctx, edges, false)
}

func (h *Handler) selectAll(ctx context.Context, els []graph.Element, forceCascade bool) error {
	if !h.options.Select {
		return nil
	}
	h.selection.Clear()
	for _, el := range els {
		h.selection.Select(el, forceCascade)
	}
	h.logger.Debug("selected by id", "count", len(els))
	h.changed(ctx)
	return nil
}

// UnselectAll clears the selection.
func (h *Handler) UnselectAll(ctx context.Context) {
	h.selection.Clear()
	h.changed(ctx)
}

// GetSelection returns the selected ids. It is empty while Select is off.
func (h *Handler) GetSelection() Selection {
	return Selection{Nodes: h.GetSelectedNodes(), Edges: h.GetSelectedEdges()}
}

// GetSelectedNodes returns the selected node ids in selection order.
func (h *Handler) GetSelectedNodes() []string {
	if !h.options.Select {
		return []string{}
	}
	return h.selection.IDs(graph.KindNode)
}

// GetSelectedEdges returns the selected edge ids in selection order.
func (h *Handler) GetSelectedEdges() []string {
	if !h.options.Select {
		return []string{}
	}
	return h.selection.IDs(graph.KindEdge)
}

func (h *Handler) SelectedNodeCount() int   { return h.selection.Count(graph.KindNode) }
func (h *Handler) SelectedEdgeCount() int   { return h.selection.Count(graph.KindEdge) }
func (h *Handler) SelectedObjectCount() int { return h.selection.Len() }
func (h *Handler) SelectionIsEmpty() bool   { return h.selection.IsEmpty() }
func (h *Handler) ClusterInSelection() bool { return h.selection.ContainsCluster() }

// SelectedNode returns the first selected node.
func (h *Handler) SelectedNode() (graph.Node, bool) {
	el, ok := h.selection.First(graph.KindNode)
	if !ok {
		return nil, false
	}
	n, ok := el.(graph.Node)
	return n, ok
}

// SelectedEdge returns the first selected edge.
func (h *Handler) SelectedEdge() (graph.Edge, bool) {
	el, ok := h.selection.First(graph.KindEdge)
	if !ok {
		return nil, false
	}
	e, ok := el.(graph.Edge)
	return e, ok
}

// HoverObject hovers el and requests a redraw if its flag changed. A node
// entering hover is announced on events.TopicNodeHovered.
func (h *Handler) HoverObject(ctx context.Context, el graph.Element) {
	if h.hoverElement(ctx, el) {
		h.redraw(ctx)
	}
}

// BlurObject clears hover on el and requests a redraw if it was hovered. A
// node losing hover is announced on events.TopicNodeBlurred.
func (h *Handler) BlurObject(ctx context.Context, el graph.Element) {
	if h.blurElement(ctx, el) {
		h.redraw(ctx)
	}
}

func (h *Handler) hoverElement(ctx context.Context, el graph.Element) bool {
	if !h.hover.Hover(el) {
		return false
	}
	if el.Kind() == graph.KindNode {
		publish(ctx, h, events.TopicNodeHovered, events.NodeHover{Node: el.ID()})
	}
	return true
}

func (h *Handler) blurElement(ctx context.Context, el graph.Element) bool {
	if !h.hover.Blur(el) {
		return false
	}
	if el.Kind() == graph.KindNode {
		publish(ctx, h, events.TopicNodeBlurred, events.NodeBlur{Node: el.ID()})
	}
	return true
}

// HoverOnPoint moves hover to the element under the pointer: every other
// hovered element is blurred first. It returns the hovered element or nil.
func (h *Handler) HoverOnPoint(ctx context.Context, pointer geom.Point) graph.Element {
	target := h.query.ElementAt(pointer)
	keep := map[graph.Kind]map[string]bool{
		graph.KindNode: {},
		graph.KindEdge: {},
	}
	if target != nil {
		keep[target.Kind()][target.ID()] = true
		if n, ok := target.(graph.Node); ok {
			for _, id := range n.EdgeIDs() {
				keep[graph.KindEdge][id] = true
			}
		}
	}

	changed := false
	for _, kind := range []graph.Kind{graph.KindNode, graph.KindEdge} {
		for _, id := range h.hover.IDs(kind) {
			if keep[kind][id] {
				continue
			}
			if el, ok := resolve(h.data, kind, id); ok && h.blurElement(ctx, el) {
				changed = true
			}
		}
	}
	if target != nil && h.hoverElement(ctx, target) {
		changed = true
	}
	if changed {
		h.redraw(ctx)
	}
	return target
}

// HoveredNodes returns the hovered node ids.
func (h *Handler) HoveredNodes() []string {
	return h.hover.IDs(graph.KindNode)
}

// HoveredEdges returns the hovered edge ids, including those hovered through
// their node.
func (h *Handler) HoveredEdges() []string {
	return h.hover.IDs(graph.KindEdge)
}

// GenerateClickEvent publishes the current selection on t together with
// the pointer in screen and canvas coordinates.
func (h *Handler) GenerateClickEvent(ctx context.Context, t topic.Topic, pointer geom.Point) error {
	if h.bus == nil {
		return nil
	}
	payload := events.Click{
		Nodes: h.GetSelectedNodes(),
		Edges: h.GetSelectedEdges(),
		Pointer: events.PointerPosition{
			Screen: pointer,
			Canvas: h.query.ToCanvas(pointer),
		},
	}
	if err := event.Publish(ctx, h.bus, t, payload, eventSource); err != nil {
		return fmt.Errorf("publish %s: %w", t, err)
	}
	return nil
}

// Reconcile prunes ids whose entities left the dataset. It runs on every
// data change when a bus is configured.
func (h *Handler) Reconcile(ctx context.Context) Pruned {
	p := h.reconciler.Reconcile()
	if p.Selected > 0 {
		publish(ctx, h, events.TopicSelectionChanged, h.snapshot())
	}
	return p
}

func (h *Handler) onDataChanged(ctx context.Context, _ events.DataChanged) error {
	h.Reconcile(ctx)
	return nil
}

// changed requests a redraw and announces the new selection.
func (h *Handler) changed(ctx context.Context) {
	h.redraw(ctx)
	publish(ctx, h, events.TopicSelectionChanged, h.snapshot())
}

func (h *Handler) redraw(ctx context.Context) {
	publish(ctx, h, events.TopicRedrawRequested, events.RedrawRequested{})
}

func (h *Handler) snapshot() events.SelectionChanged {
	s := h.GetSelection()
	return events.SelectionChanged{Nodes: s.Nodes, Edges: s.Edges}
}

func publish[T any](ctx context.Context, h *Handler, t topic.Topic, payload T) {
	if h.bus == nil {
		return
	}
	if err := event.Publish(ctx, h.bus, t, payload, eventSource); err != nil {
		h.logger.Warn("publish failed", "topic", t, "err", err)
	}
}
