package graph

import "github.com/dshills/graphsel/internal/geom"

// DefaultEdgeWidth is the hit width used when an EdgeSpec has none.
const DefaultEdgeWidth = 4

// EdgeSpec describes an edge to add.
type EdgeSpec struct {
	// ID is generated when empty.
	ID    string
	From  string
	To    string
	Width float64
	Color string
}

// BasicEdge is the body's edge implementation. It refers to its endpoints
// by id and resolves them through the body when it needs geometry.
type BasicEdge struct {
	id       string
	from     string
	to       string
	width    float64
	color    string
	body     *Body
	selected bool
	hover    bool
}

func (e *BasicEdge) ID() string     { return e.id }
func (e *BasicEdge) Kind() Kind     { return KindEdge }
func (e *BasicEdge) FromID() string { return e.from }
func (e *BasicEdge) ToID() string   { return e.to }
func (e *BasicEdge) Color() string  { return e.color }
func (e *BasicEdge) Width() float64 { return e.width }

func (e *BasicEdge) Selected() bool     { return e.selected }
func (e *BasicEdge) SetSelected(v bool) { e.selected = v }
func (e *BasicEdge) Hovered() bool      { return e.hover }
func (e *BasicEdge) SetHovered(v bool)  { e.hover = v }

// Segment returns the edge footprint. ok is false when an endpoint is gone.
func (e *BasicEdge) Segment() (seg geom.Segment, ok bool) {
	from, ok1 := e.body.basicNode(e.from)
	to, ok2 := e.body.basicNode(e.to)
	if !ok1 || !ok2 {
		return geom.Segment{}, false
	}
	return geom.Segment{From: from.pos, To: to.pos, Width: e.width}, true
}

// Overlaps implements Element. A dangling edge never overlaps.
func (e *BasicEdge) Overlaps(b geom.Box) bool {
	seg, ok := e.Segment()
	return ok && seg.Overlaps(b)
}
