// Package graph is the dataset body: the authoritative node and edge
// collections, their draw order, and the entities' selection and hover
// flags. Mutations publish events.TopicDataChanged so that holders of
// id references can reconcile.
package graph

import "github.com/dshills/graphsel/internal/geom"

// Kind distinguishes nodes from edges.
type Kind uint8

const (
	// KindNode identifies a node.
	KindNode Kind = iota
	// KindEdge identifies an edge.
	KindEdge
)

// String returns "node" or "edge".
func (k Kind) String() string {
	if k == KindEdge {
		return "edge"
	}
	return "node"
}

// Element is what nodes and edges have in common.
type Element interface {
	ID() string
	Kind() Kind

	Selected() bool
	SetSelected(selected bool)

	Hovered() bool
	SetHovered(hovered bool)

	// Overlaps is the element's hit test against a canvas-space box.
	Overlaps(b geom.Box) bool
}

// Node is a graph vertex.
type Node interface {
	Element
	// EdgeIDs lists incident edges in the order they were attached.
	EdgeIDs() []string
	// ClusterSize is the number of nodes this node stands for; above one
	// the node is a collapsed cluster.
	ClusterSize() int
}

// Edge connects two nodes by id.
type Edge interface {
	Element
	FromID() string
	ToID() string
}

// Dataset is the read-only view of a graph body.
type Dataset interface {
	Node(id string) (Node, bool)
	Edge(id string) (Edge, bool)
	// NodeIndices returns node ids in draw order, bottom first.
	NodeIndices() []string
	// EdgeIndices returns edge ids in draw order, bottom first.
	EdgeIndices() []string
}
