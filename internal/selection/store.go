package selection

import "github.com/dshills/graphsel/internal/graph"

// Store holds the selected node and edge ids.
type Store struct {
	data    graph.Dataset
	options *Options
	cascade Cascade
	nodes   *idSet
	edges   *idSet
}

// NewStore creates an empty store. options is read on every Select to
// decide whether a node selection cascades to its edges.
func NewStore(data graph.Dataset, options *Options) *Store {
	return &Store{
		data:    data,
		options: options,
		cascade: Cascade{data: data},
		nodes:   newIDSet(),
		edges:   newIDSet(),
	}
}

// Select marks el selected. Selecting a node also selects its edges when
// SelectConnectedEdges is set or forceCascade is true. It returns false for
// a nil element.
func (s *Store) Select(el graph.Element, forceCascade bool) bool {
	if el == nil {
		return false
	}
	s.add(el)
	if n, ok := el.(graph.Node); ok && (forceCascade || s.options.SelectConnectedEdges) {
		s.cascade.SelectEdgesOf(n, s)
	}
	return true
}

// Deselect clears el if it is selected. Edges are left alone.
func (s *Store) Deselect(el graph.Element) {
	if el == nil || !el.Selected() {
		return
	}
	el.SetSelected(false)
	s.set(el.Kind()).remove(el.ID())
}

// Clear unselects every selected node, then every selected edge, and
// empties the store. Ids that no longer resolve are dropped.
func (s *Store) Clear() {
	for _, id := range s.nodes.order {
		if n, ok := s.data.Node(id); ok {
			n.SetSelected(false)
		}
	}
	for _, id := range s.edges.order {
		if e, ok := s.data.Edge(id); ok {
			e.SetSelected(false)
		}
	}
	s.nodes.clear()
	s.edges.clear()
}

// Contains reports whether id of the given kind is selected.
func (s *Store) Contains(kind graph.Kind, id string) bool {
	return s.set(kind).has(id)
}

// Count returns the number of selected elements of one kind.
func (s *Store) Count(kind graph.Kind) int {
	return s.set(kind).len()
}

// Len returns the number of selected elements.
func (s *Store) Len() int {
	return s.nodes.len() + s.edges.len()
}

// IsEmpty reports whether nothing is selected.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// ContainsCluster reports whether a selected node stands for more than one
// node.
func (s *Store) ContainsCluster() bool {
	for _, id := range s.nodes.order {
		if n, ok := s.data.Node(id); ok && n.ClusterSize() > 1 {
			return true
		}
	}
	return false
}

// IDs returns the selected ids of one kind in selection order.
func (s *Store) IDs(kind graph.Kind) []string {
	return s.set(kind).ids()
}

// First returns the earliest selected element of one kind that still
// resolves.
func (s *Store) First(kind graph.Kind) (graph.Element, bool) {
	for _, id := range s.set(kind).order {
		if el, ok := resolve(s.data, kind, id); ok {
			return el, true
		}
	}
	return nil, false
}

// add records el without cascading.
func (s *Store) add(el graph.Element) {
	el.SetSelected(true)
	s.set(el.Kind()).add(el.ID())
}

func (s *Store) set(kind graph.Kind) *idSet {
	if kind == graph.KindEdge {
		return s.edges
	}
	return s.nodes
}

// resolve looks up an id of the given kind. It never returns a non-nil
// interface holding a missing entity.
func resolve(data graph.Dataset, kind graph.Kind, id string) (graph.Element, bool) {
	if kind == graph.KindEdge {
		if e, ok := data.Edge(id); ok {
			return e, true
		}
		return nil, false
	}
	if n, ok := data.Node(id); ok {
		return n, true
	}
	return nil, false
}
