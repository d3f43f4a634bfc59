package selection

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/topic"
	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/graph"
)

// Fixture pointers into the scene built by newScene.
var (
	onNode1   = geom.Point{X: 0, Y: 0}
	onNode2   = geom.Point{X: 100, Y: 0}
	onNode3   = geom.Point{X: 50, Y: 80}
	onEdge12  = geom.Point{X: 50, Y: 0}
	onNothing = geom.Point{X: -500, Y: -500}
)

// recorder captures the topics published on a bus.
type recorder struct {
	mu     sync.Mutex
	topics []topic.Topic
	events []any
}

func (r *recorder) Handle(_ context.Context, ev any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tp, ok := ev.(event.TopicProvider); ok {
		r.topics = append(r.topics, tp.EventTopic())
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) count(t topic.Topic) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.topics {
		if got == t {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = nil
	r.events = nil
}

type scene struct {
	body    *graph.Body
	bus     event.Bus
	handler *Handler
	rec     *recorder
}

// newScene builds nodes 1, 2 and 3 with edges e12 and e23:
//
//	1 (0,0) ---- e12 ---- 2 (100,0)
//	                       \
//	                        e23
//	                         \
//	                          3 (50,80)
func newScene(t *testing.T, opts ...HandlerOption) *scene {
	t.Helper()
	bus := event.NewBus()
	require.NoError(t, bus.Start())
	t.Cleanup(func() { _ = bus.Stop() })

	body := graph.NewBody(graph.WithBus(bus))
	require.NoError(t, body.Load(context.Background(), graph.Document{
		Nodes: []graph.NodeSpec{
			{ID: "1", X: 0, Y: 0},
			{ID: "2", X: 100, Y: 0},
			{ID: "3", X: 50, Y: 80},
		},
		Edges: []graph.EdgeSpec{
			{ID: "e12", From: "1", To: "2"},
			{ID: "e23", From: "2", To: "3"},
		},
	}))

	h, err := NewHandler(body, nil, append([]HandlerOption{WithBus(bus)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	rec := &recorder{}
	_, err = bus.Subscribe("graph.**", rec, event.WithPriority(event.PriorityLow))
	require.NoError(t, err)

	return &scene{body: body, bus: bus, handler: h, rec: rec}
}

func (s *scene) node(t *testing.T, id string) graph.Node {
	t.Helper()
	n, ok := s.body.Node(id)
	require.True(t, ok, "node %s", id)
	return n
}

func (s *scene) edge(t *testing.T, id string) graph.Edge {
	t.Helper()
	e, ok := s.body.Edge(id)
	require.True(t, ok, "edge %s", id)
	return e
}
