package selection

import "github.com/dshills/graphsel/internal/graph"

// HoverStore holds the hovered node and edge ids.
type HoverStore struct {
	cascade Cascade
	nodes   *idSet
	edges   *idSet
}

// NewHoverStore creates an empty hover store.
func NewHoverStore(data graph.Dataset) *HoverStore {
	return &HoverStore{
		cascade: Cascade{data: data},
		nodes:   newIDSet(),
		edges:   newIDSet(),
	}
}

// Hover marks el hovered and reports whether its flag was previously clear,
// which is when an enter event is due. Hovering a node always hovers its
// edges.
func (h *HoverStore) Hover(el graph.Element) bool {
	if el == nil {
		return false
	}
	entered := !el.Hovered()
	h.add(el)
	if n, ok := el.(graph.Node); ok {
		h.cascade.HoverEdgesOf(n, h)
	}
	return entered
}

// Blur clears el if it is hovered and reports whether it was. A node's edges
// lose hover along with it unless their other endpoint is still hovered.
func (h *HoverStore) Blur(el graph.Element) bool {
	if el == nil || !el.Hovered() {
		return false
	}
	h.remove(el)
	if n, ok := el.(graph.Node); ok {
		h.cascade.BlurEdgesOf(n, h)
	}
	return true
}

// Contains reports whether id of the given kind is hovered.
func (h *HoverStore) Contains(kind graph.Kind, id string) bool {
	return h.set(kind).has(id)
}

// IDs returns the hovered ids of one kind in hover order.
func (h *HoverStore) IDs(kind graph.Kind) []string {
	return h.set(kind).ids()
}

// Len returns the number of hovered elements.
func (h *HoverStore) Len() int {
	return h.nodes.len() + h.edges.len()
}

func (h *HoverStore) add(el graph.Element) {
	el.SetHovered(true)
	h.set(el.Kind()).add(el.ID())
}

func (h *HoverStore) remove(el graph.Element) {
	el.SetHovered(false)
	h.set(el.Kind()).remove(el.ID())
}

func (h *HoverStore) set(kind graph.Kind) *idSet {
	if kind == graph.KindEdge {
		return h.edges
	}
	return h.nodes
}
