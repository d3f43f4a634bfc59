package graph

import "github.com/dshills/graphsel/internal/geom"

// Shape names accepted in NodeSpec.Shape.
const (
	ShapeCircle = "circle"
	ShapeBox    = "box"
)

// DefaultNodeSize is the radius used when a NodeSpec has no size.
const DefaultNodeSize = 10

// NodeSpec describes a node to add.
type NodeSpec struct {
	// ID is generated when empty.
	ID      string
	Label   string
	X, Y    float64
	Size    float64
	Shape   string
	Color   string
	Cluster int
}

// BasicNode is the body's node implementation.
type BasicNode struct {
	id       string
	label    string
	pos      geom.Point
	size     float64
	shape    string
	color    string
	cluster  int
	edges    []string
	selected bool
	hover    bool
}

func newNode(spec NodeSpec) *BasicNode {
	n := &BasicNode{
		id:      spec.ID,
		label:   spec.Label,
		pos:     geom.Point{X: spec.X, Y: spec.Y},
		size:    spec.Size,
		shape:   spec.Shape,
		color:   spec.Color,
		cluster: spec.Cluster,
	}
	if n.size <= 0 {
		n.size = DefaultNodeSize
	}
	if n.shape == "" {
		n.shape = ShapeCircle
	}
	if n.cluster < 1 {
		n.cluster = 1
	}
	return n
}

func (n *BasicNode) ID() string    { return n.id }
func (n *BasicNode) Kind() Kind    { return KindNode }
func (n *BasicNode) Label() string { return n.label }
func (n *BasicNode) Color() string { return n.color }

// Position is the node centre in canvas space.
func (n *BasicNode) Position() geom.Point { return n.pos }

// Size is the radius for circles and half the side for boxes.
func (n *BasicNode) Size() float64 { return n.size }

func (n *BasicNode) Selected() bool     { return n.selected }
func (n *BasicNode) SetSelected(v bool) { n.selected = v }
func (n *BasicNode) Hovered() bool      { return n.hover }
func (n *BasicNode) SetHovered(v bool)  { n.hover = v }
func (n *BasicNode) ClusterSize() int   { return n.cluster }

// EdgeIDs returns a copy of the incident edge list.
func (n *BasicNode) EdgeIDs() []string {
	out := make([]string, len(n.edges))
	copy(out, n.edges)
	return out
}

// Shape returns the node footprint.
func (n *BasicNode) Shape() geom.Shape {
	if n.shape == ShapeBox {
		return geom.Rect{Center: n.pos, Width: 2 * n.size, Height: 2 * n.size}
	}
	return geom.Circle{Center: n.pos, Radius: n.size}
}

// Overlaps implements Element.
func (n *BasicNode) Overlaps(b geom.Box) bool {
	return n.Shape().Overlaps(b)
}

func (n *BasicNode) attach(edgeID string) {
	n.edges = append(n.edges, edgeID)
}

func (n *BasicNode) detach(edgeID string) {
	for i, id := range n.edges {
		if id == edgeID {
			n.edges = append(n.edges[:i], n.edges[i+1:]...)
			return
		}
	}
}
