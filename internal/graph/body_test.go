package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/events"
	"github.com/dshills/graphsel/internal/geom"
)

func newTestBody(t *testing.T) (*Body, *int) {
	t.Helper()
	bus := event.NewBus()
	require.NoError(t, bus.Start())
	t.Cleanup(func() { _ = bus.Stop() })

	changes := 0
	_, err := event.SubscribePayload(bus, events.TopicDataChanged, func(context.Context, events.DataChanged) error {
		changes++
		return nil
	})
	require.NoError(t, err)
	return NewBody(WithBus(bus)), &changes
}

func triangle(t *testing.T, b *Body) {
	t.Helper()
	err := b.Load(context.Background(), Document{
		Nodes: []NodeSpec{
			{ID: "1", X: 0, Y: 0},
			{ID: "2", X: 100, Y: 0},
			{ID: "3", X: 50, Y: 80},
		},
		Edges: []EdgeSpec{
			{ID: "e12", From: "1", To: "2"},
			{ID: "e23", From: "2", To: "3"},
			{ID: "e31", From: "3", To: "1"},
		},
	})
	require.NoError(t, err)
}

func TestBodyLoad(t *testing.T) {
	b, changes := newTestBody(t)
	triangle(t, b)

	assert.Equal(t, []string{"1", "2", "3"}, b.NodeIndices())
	assert.Equal(t, []string{"e12", "e23", "e31"}, b.EdgeIndices())
	assert.Equal(t, 1, *changes)

	n, ok := b.Node("2")
	require.True(t, ok)
	assert.Equal(t, []string{"e12", "e23"}, n.EdgeIDs())
	assert.Equal(t, 1, n.ClusterSize())
	assert.Equal(t, KindNode, n.Kind())

	e, ok := b.Edge("e31")
	require.True(t, ok)
	assert.Equal(t, "3", e.FromID())
	assert.Equal(t, "1", e.ToID())
	assert.Equal(t, "edge", e.Kind().String())
}

func TestBodyAddGeneratesIDs(t *testing.T) {
	b, changes := newTestBody(t)
	ctx := context.Background()

	a, err := b.AddNode(ctx, NodeSpec{})
	require.NoError(t, err)
	c, err := b.AddNode(ctx, NodeSpec{X: 30})
	require.NoError(t, err)
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, c)

	e, err := b.AddEdge(ctx, EdgeSpec{From: a, To: c})
	require.NoError(t, err)
	assert.NotEmpty(t, e)
	assert.Equal(t, 3, *changes)
}

func TestBodyAddErrors(t *testing.T) {
	b, changes := newTestBody(t)
	triangle(t, b)
	ctx := context.Background()

	_, err := b.AddNode(ctx, NodeSpec{ID: "1"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = b.AddEdge(ctx, EdgeSpec{ID: "e12", From: "1", To: "2"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = b.AddEdge(ctx, EdgeSpec{From: "1", To: "9"})
	assert.ErrorIs(t, err, ErrUnknownNode)

	assert.Equal(t, 1, *changes, "failed additions must not publish")
}

func TestBodyRemoveNodeDropsIncidentEdges(t *testing.T) {
	b, changes := newTestBody(t)
	triangle(t, b)

	require.NoError(t, b.RemoveNode(context.Background(), "1"))

	assert.Equal(t, []string{"2", "3"}, b.NodeIndices())
	assert.Equal(t, []string{"e23"}, b.EdgeIndices())
	n, _ := b.Node("2")
	assert.Equal(t, []string{"e23"}, n.EdgeIDs())
	assert.Equal(t, 2, *changes)

	err := b.RemoveNode(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestBodyRemoveEdge(t *testing.T) {
	b, _ := newTestBody(t)
	triangle(t, b)

	require.NoError(t, b.RemoveEdge(context.Background(), "e23"))
	_, ok := b.Edge("e23")
	assert.False(t, ok)

	n, _ := b.Node("3")
	assert.Equal(t, []string{"e31"}, n.EdgeIDs())

	err := b.RemoveEdge(context.Background(), "e23")
	assert.True(t, errors.Is(err, ErrUnknownEdge))
}

func TestBodyIndicesAreCopies(t *testing.T) {
	b, _ := newTestBody(t)
	triangle(t, b)

	ids := b.NodeIndices()
	ids[0] = "mutated"
	assert.Equal(t, "1", b.NodeIndices()[0])
}

func TestBodyWithoutBus(t *testing.T) {
	b := NewBody()
	_, err := b.AddNode(context.Background(), NodeSpec{ID: "a"})
	require.NoError(t, err)
	b.Clear(context.Background())
	nodes, edges := b.Len()
	assert.Zero(t, nodes)
	assert.Zero(t, edges)
}

func TestHitTests(t *testing.T) {
	b, _ := newTestBody(t)
	triangle(t, b)
	_, err := b.AddNode(context.Background(), NodeSpec{ID: "box", X: 200, Y: 200, Size: 5, Shape: ShapeBox})
	require.NoError(t, err)

	tests := []struct {
		name string
		id   string
		at   geom.Point
		want bool
	}{
		{"node centre", "1", geom.Point{X: 0, Y: 0}, true},
		{"node rim", "1", geom.Point{X: 10.5, Y: 0}, true},
		{"node outside", "1", geom.Point{X: 20, Y: 0}, false},
		{"box corner", "box", geom.Point{X: 205.5, Y: 205.5}, true},
		{"box outside", "box", geom.Point{X: 210, Y: 200}, false},
		{"edge middle", "e12", geom.Point{X: 50, Y: 0}, true},
		{"edge off", "e12", geom.Point{X: 50, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var el Element
			if n, ok := b.Node(tt.id); ok {
				el = n
			} else {
				e, ok := b.Edge(tt.id)
				require.True(t, ok)
				el = e
			}
			if got := el.Overlaps(geom.ProbeBox(tt.at)); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestDanglingEdgeNeverOverlaps(t *testing.T) {
	b, _ := newTestBody(t)
	triangle(t, b)
	e, _ := b.BasicEdge("e12")
	require.NoError(t, b.RemoveNode(context.Background(), "2"))

	assert.False(t, e.Overlaps(geom.ProbeBox(geom.Point{X: 50, Y: 0})))
}

func TestMoveNode(t *testing.T) {
	b, changes := newTestBody(t)
	triangle(t, b)

	require.NoError(t, b.MoveNode("1", 5, 6))
	n, _ := b.BasicNode("1")
	assert.Equal(t, geom.Point{X: 5, Y: 6}, n.Position())
	assert.Equal(t, 1, *changes)
	assert.ErrorIs(t, b.MoveNode("9", 0, 0), ErrUnknownNode)
}
