package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/graphsel/internal/graph"
)

func TestStoreSelectIsIdempotent(t *testing.T) {
	s := newScene(t)
	opts := Options{Select: true}
	store := NewStore(s.body, &opts)
	n := s.node(t, "1")

	assert.True(t, store.Select(n, false))
	assert.True(t, store.Select(n, false))

	assert.Equal(t, []string{"1"}, store.IDs(graph.KindNode))
	assert.True(t, n.Selected())
	assert.Equal(t, 1, store.Len())
}

func TestStoreSelectNil(t *testing.T) {
	s := newScene(t)
	opts := DefaultOptions()
	store := NewStore(s.body, &opts)

	assert.False(t, store.Select(nil, true))
	assert.True(t, store.IsEmpty())
}

func TestStoreDeselect(t *testing.T) {
	s := newScene(t)
	opts := Options{Select: true}
	store := NewStore(s.body, &opts)
	n1, n2 := s.node(t, "1"), s.node(t, "2")

	store.Deselect(n1)
	assert.True(t, store.IsEmpty(), "deselecting an unselected node is a no-op")
	assert.False(t, n1.Selected())

	store.Select(n1, false)
	store.Select(n2, false)
	store.Deselect(n1)
	store.Deselect(n1)

	assert.False(t, n1.Selected())
	assert.True(t, n2.Selected())
	assert.Equal(t, []string{"2"}, store.IDs(graph.KindNode))
}

func TestStoreCascade(t *testing.T) {
	tests := []struct {
		name      string
		connected bool
		force     bool
		wantEdges []string
	}{
		{"option on", true, false, []string{"e12", "e23"}},
		{"option off", false, false, []string{}},
		{"forced", false, true, []string{"e12", "e23"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t)
			opts := Options{Select: true, SelectConnectedEdges: tt.connected}
			store := NewStore(s.body, &opts)

			store.Select(s.node(t, "2"), tt.force)

			assert.Equal(t, tt.wantEdges, store.IDs(graph.KindEdge))
			for _, id := range []string{"e12", "e23"} {
				want := len(tt.wantEdges) > 0
				assert.Equal(t, want, s.edge(t, id).Selected(), "edge %s flag", id)
			}
		})
	}
}

func TestStoreEdgesDoNotCascade(t *testing.T) {
	s := newScene(t)
	opts := DefaultOptions()
	store := NewStore(s.body, &opts)

	store.Select(s.edge(t, "e12"), true)

	assert.Empty(t, store.IDs(graph.KindNode))
	assert.False(t, s.node(t, "1").Selected())
	assert.False(t, s.node(t, "2").Selected())
}

func TestStoreClear(t *testing.T) {
	s := newScene(t)
	opts := DefaultOptions()
	store := NewStore(s.body, &opts)

	store.Select(s.node(t, "1"), false)
	store.Select(s.node(t, "3"), false)
	require.Equal(t, 2, store.Count(graph.KindNode))
	require.Equal(t, 2, store.Count(graph.KindEdge))

	store.Clear()

	assert.True(t, store.IsEmpty())
	for _, id := range []string{"1", "2", "3"} {
		assert.False(t, s.node(t, id).Selected(), "node %s", id)
	}
	for _, id := range []string{"e12", "e23"} {
		assert.False(t, s.edge(t, id).Selected(), "edge %s", id)
	}
}

func TestStoreClearSkipsVanishedEntities(t *testing.T) {
	s := newScene(t)
	opts := DefaultOptions()
	store := NewStore(s.body, &opts)
	store.Select(s.node(t, "1"), false)

	require.NoError(t, s.body.RemoveNode(context.Background(), "1"))
	store.Clear()

	assert.True(t, store.IsEmpty())
}

func TestStoreFirstAndCluster(t *testing.T) {
	s := newScene(t)
	_, err := s.body.AddNode(context.Background(), graph.NodeSpec{ID: "c", X: 300, Cluster: 4})
	require.NoError(t, err)

	opts := Options{Select: true}
	store := NewStore(s.body, &opts)

	_, ok := store.First(graph.KindNode)
	assert.False(t, ok)

	store.Select(s.node(t, "3"), false)
	store.Select(s.node(t, "1"), false)
	first, ok := store.First(graph.KindNode)
	require.True(t, ok)
	assert.Equal(t, "3", first.ID())
	assert.False(t, store.ContainsCluster())

	store.Select(s.node(t, "c"), false)
	assert.True(t, store.ContainsCluster())
	assert.True(t, store.Contains(graph.KindNode, "c"))
}
