package graph

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/events"
)

const eventSource = "graph"

// Body owns the node and edge collections. Index order is draw order:
// the last index is drawn on top.
//
// Change notifications are published after the body lock is released, so
// subscribers may read the body from their handlers.
type Body struct {
	mu        sync.RWMutex
	nodes     map[string]*BasicNode
	edges     map[string]*BasicEdge
	nodeOrder []string
	edgeOrder []string

	bus    event.Bus
	logger *slog.Logger
}

// BodyOption configures a Body.
type BodyOption func(*Body)

// WithBus sets the bus that receives events.TopicDataChanged.
func WithBus(b event.Bus) BodyOption {
	return func(body *Body) {
		body.bus = b
	}
}

// WithLogger sets the body logger.
func WithLogger(l *slog.Logger) BodyOption {
	return func(body *Body) {
		if l != nil {
			body.logger = l
		}
	}
}

// NewBody creates an empty body.
func NewBody(opts ...BodyOption) *Body {
	b := &Body{
		nodes:  make(map[string]*BasicNode),
		edges:  make(map[string]*BasicEdge),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Node implements Dataset.
func (b *Body) Node(id string) (Node, bool) {
	n, ok := b.basicNode(id)
	if !ok {
		return nil, false
	}
	return n, true
}

// Edge implements Dataset.
func (b *Body) Edge(id string) (Edge, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.edges[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// BasicNode returns the concrete node, for renderers.
func (b *Body) BasicNode(id string) (*BasicNode, bool) {
	return b.basicNode(id)
}

// BasicEdge returns the concrete edge, for renderers.
func (b *Body) BasicEdge(id string) (*BasicEdge, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.edges[id]
	return e, ok
}

func (b *Body) basicNode(id string) (*BasicNode, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n, ok := b.nodes[id]
	return n, ok
}

// NodeIndices implements Dataset. The returned slice is a copy.
func (b *Body) NodeIndices() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.nodeOrder)
}

// EdgeIndices implements Dataset. The returned slice is a copy.
func (b *Body) EdgeIndices() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.edgeOrder)
}

// Len returns the node and edge counts.
func (b *Body) Len() (nodes, edges int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.nodes), len(b.edges)
}

// AddNode adds a node on top of the draw order and returns its id.
func (b *Body) AddNode(ctx context.Context, spec NodeSpec) (string, error) {
	b.mu.Lock()
	id, err := b.addNodeLocked(spec)
	b.mu.Unlock()
	if err != nil {
		return "", err
	}
	b.changed(ctx)
	return id, nil
}

// AddEdge adds an edge between two existing nodes and returns its id.
func (b *Body) AddEdge(ctx context.Context, spec EdgeSpec) (string, error) {
	b.mu.Lock()
	id, err := b.addEdgeLocked(spec)
	b.mu.Unlock()
	if err != nil {
		return "", err
	}
	b.changed(ctx)
	return id, nil
}

// RemoveNode removes a node together with its incident edges.
func (b *Body) RemoveNode(ctx context.Context, id string) error {
	b.mu.Lock()
	n, ok := b.nodes[id]
	if !ok {
		b.mu.Unlock()
		return unknown(KindNode, id)
	}
	for _, edgeID := range n.EdgeIDs() {
		b.removeEdgeLocked(edgeID)
	}
	delete(b.nodes, id)
	b.nodeOrder = remove(b.nodeOrder, id)
	b.mu.Unlock()

	b.logger.Debug("node removed", "node", id)
	b.changed(ctx)
	return nil
}

// RemoveEdge removes a single edge.
func (b *Body) RemoveEdge(ctx context.Context, id string) error {
	b.mu.Lock()
	if _, ok := b.edges[id]; !ok {
		b.mu.Unlock()
		return unknown(KindEdge, id)
	}
	b.removeEdgeLocked(id)
	b.mu.Unlock()

	b.logger.Debug("edge removed", "edge", id)
	b.changed(ctx)
	return nil
}

// MoveNode sets a node position. Geometry changes do not alter membership,
// so no change event is published.
func (b *Body) MoveNode(id string, x, y float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.nodes[id]
	if !ok {
		return unknown(KindNode, id)
	}
	n.pos.X, n.pos.Y = x, y
	return nil
}

// Load adds every node and then every edge of doc and publishes a single
// change event. On error the body keeps whatever was added before the
// failing element.
func (b *Body) Load(ctx context.Context, doc Document) error {
	b.mu.Lock()
	var err error
	added := 0
	for _, spec := range doc.Nodes {
		if _, err = b.addNodeLocked(spec); err != nil {
			break
		}
		added++
	}
	if err == nil {
		for _, spec := range doc.Edges {
			if _, err = b.addEdgeLocked(spec); err != nil {
				break
			}
			added++
		}
	}
	b.mu.Unlock()

	if added > 0 {
		b.changed(ctx)
	}
	return err
}

// Clear removes everything.
func (b *Body) Clear(ctx context.Context) {
	b.mu.Lock()
	b.nodes = make(map[string]*BasicNode)
	b.edges = make(map[string]*BasicEdge)
	b.nodeOrder = nil
	b.edgeOrder = nil
	b.mu.Unlock()
	b.changed(ctx)
}

func (b *Body) addNodeLocked(spec NodeSpec) (string, error) {
	if spec.ID == "" {
		spec.ID = uuid.NewString()
	}
	if _, ok := b.nodes[spec.ID]; ok {
		return "", fmt.Errorf("node %q: %w", spec.ID, ErrDuplicateID)
	}
	b.nodes[spec.ID] = newNode(spec)
	b.nodeOrder = append(b.nodeOrder, spec.ID)
	return spec.ID, nil
}

func (b *Body) addEdgeLocked(spec EdgeSpec) (string, error) {
	if spec.ID == "" {
		spec.ID = uuid.NewString()
	}
	if _, ok := b.edges[spec.ID]; ok {
		return "", fmt.Errorf("edge %q: %w", spec.ID, ErrDuplicateID)
	}
	from, ok := b.nodes[spec.From]
	if !ok {
		return "", fmt.Errorf("edge %q: %w", spec.ID, unknown(KindNode, spec.From))
	}
	to, ok := b.nodes[spec.To]
	if !ok {
		return "", fmt.Errorf("edge %q: %w", spec.ID, unknown(KindNode, spec.To))
	}
	width := spec.Width
	if width <= 0 {
		width = DefaultEdgeWidth
	}
	b.edges[spec.ID] = &BasicEdge{
		id:    spec.ID,
		from:  spec.From,
		to:    spec.To,
		width: width,
		color: spec.Color,
		body:  b,
	}
	b.edgeOrder = append(b.edgeOrder, spec.ID)
	from.attach(spec.ID)
	if to != from {
		to.attach(spec.ID)
	}
	return spec.ID, nil
}

func (b *Body) removeEdgeLocked(id string) {
	e, ok := b.edges[id]
	if !ok {
		return
	}
	if n, ok := b.nodes[e.from]; ok {
		n.detach(id)
	}
	if n, ok := b.nodes[e.to]; ok {
		n.detach(id)
	}
	delete(b.edges, id)
	b.edgeOrder = remove(b.edgeOrder, id)
}

func (b *Body) changed(ctx context.Context) {
	if b.bus == nil {
		return
	}
	if err := event.Publish(ctx, b.bus, events.TopicDataChanged, events.DataChanged{}, eventSource); err != nil {
		b.logger.Warn("publish data changed", "error", err)
	}
}

func remove(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}
