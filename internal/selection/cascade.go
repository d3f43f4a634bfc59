package selection

import "github.com/dshills/graphsel/internal/graph"

// Cascade carries a node's selection or hover onto its incident edges.
// Edges are leaves: nothing here ever selects or hovers a node.
type Cascade struct {
	data graph.Dataset
}

// SelectEdgesOf selects every resolvable edge of n in n's edge order.
func (c Cascade) SelectEdgesOf(n graph.Node, s *Store) {
	for _, e := range c.edgesOf(n) {
		s.add(e)
	}
}

// DeselectEdgesOf deselects every resolvable edge of n.
func (c Cascade) DeselectEdgesOf(n graph.Node, s *Store) {
	for _, e := range c.edgesOf(n) {
		s.Deselect(e)
	}
}

// HoverEdgesOf hovers every edge of n. The flag is set unconditionally and
// no enter event is produced for edges.
func (c Cascade) HoverEdgesOf(n graph.Node, h *HoverStore) {
	for _, e := range c.edgesOf(n) {
		h.add(e)
	}
}

// BlurEdgesOf clears hover on the edges of n without events. An edge whose
// other endpoint is still hovered keeps its hover.
func (c Cascade) BlurEdgesOf(n graph.Node, h *HoverStore) {
	for _, e := range c.edgesOf(n) {
		other := e.ToID()
		if other == n.ID() {
			other = e.FromID()
		}
		if other != n.ID() && h.Contains(graph.KindNode, other) {
			continue
		}
		h.remove(e)
	}
}

func (c Cascade) edgesOf(n graph.Node) []graph.Edge {
	ids := n.EdgeIDs()
	edges := make([]graph.Edge, 0, len(ids))
	for _, id := range ids {
		if e, ok := c.data.Edge(id); ok {
			edges = append(edges, e)
		}
	}
	return edges
}
