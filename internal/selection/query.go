package selection

import (
	"github.com/dshills/graphsel/internal/canvas"
	"github.com/dshills/graphsel/internal/geom"
	"github.com/dshills/graphsel/internal/graph"
)

// Query finds the elements under a screen pointer.
//
// Index order is draw order, so among several overlapping elements the one
// with the highest index is on top and wins.
type Query struct {
	data graph.Dataset
	view canvas.Transformer
}

// NewQuery creates a query over data. A nil view means pointers are already
// in canvas coordinates.
func NewQuery(data graph.Dataset, view canvas.Transformer) *Query {
	if view == nil {
		view = canvas.Identity{}
	}
	return &Query{data: data, view: view}
}

// ProbeBox converts the pointer to canvas space and returns the 2x2 box
// around it.
func (q *Query) ProbeBox(pointer geom.Point) geom.Box {
	return geom.ProbeBox(q.view.ToCanvas(pointer))
}

// ToCanvas converts a screen pointer to canvas coordinates.
func (q *Query) ToCanvas(pointer geom.Point) geom.Point {
	return q.view.ToCanvas(pointer)
}

// NodeAt returns the topmost node under the pointer.
func (q *Query) NodeAt(pointer geom.Point) (graph.Node, bool) {
	nodes := q.NodesOverlapping(q.ProbeBox(pointer))
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[len(nodes)-1], true
}

// EdgeAt returns the topmost edge under the pointer.
func (q *Query) EdgeAt(pointer geom.Point) (graph.Edge, bool) {
	edges := q.EdgesOverlapping(q.ProbeBox(pointer))
	if len(edges) == 0 {
		return nil, false
	}
	return edges[len(edges)-1], true
}

// ElementAt returns the topmost node under the pointer, or the topmost
// edge when no node is hit, or nil.
func (q *Query) ElementAt(pointer geom.Point) graph.Element {
	if n, ok := q.NodeAt(pointer); ok {
		return n
	}
	if e, ok := q.EdgeAt(pointer); ok {
		return e
	}
	return nil
}

// NodesOverlapping returns every node overlapping b in index order.
func (q *Query) NodesOverlapping(b geom.Box) []graph.Node {
	var out []graph.Node
	for _, id := range q.data.NodeIndices() {
		if n, ok := q.data.Node(id); ok && n.Overlaps(b) {
			out = append(out, n)
		}
	}
	return out
}

// EdgesOverlapping returns every edge overlapping b in index order.
func (q *Query) EdgesOverlapping(b geom.Box) []graph.Edge {
	var out []graph.Edge
	for _, id := range q.data.EdgeIndices() {
		if e, ok := q.data.Edge(id); ok && e.Overlaps(b) {
			out = append(out, e)
		}
	}
	return out
}
