package events

import (
	"github.com/tidwall/sjson"

	"github.com/dshills/graphsel/internal/event/topic"
	"github.com/dshills/graphsel/internal/geom"
)

// Dataset topics.
const (
	// TopicDataChanged is published by the graph body after nodes or edges
	// were added or removed.
	TopicDataChanged topic.Topic = "graph.data.changed"
)

// Selection and hover topics.
const (
	// TopicRedrawRequested asks renderers to repaint.
	TopicRedrawRequested topic.Topic = "graph.redraw.requested"

	// TopicSelectionChanged carries the selection after a mutation.
	TopicSelectionChanged topic.Topic = "graph.selection.changed"

	// TopicNodeHovered is published when the pointer enters a node.
	TopicNodeHovered topic.Topic = "graph.node.hovered"

	// TopicNodeBlurred is published when a hovered node loses hover.
	TopicNodeBlurred topic.Topic = "graph.node.blurred"
)

// Pointer topics.
const (
	TopicClick       topic.Topic = "graph.pointer.click"
	TopicDoubleClick topic.Topic = "graph.pointer.doubleclick"
	TopicHold        topic.Topic = "graph.pointer.hold"
)

// DataChanged has no payload; subscribers re-read the dataset.
type DataChanged struct{}

// RedrawRequested has no payload.
type RedrawRequested struct{}

// SelectionChanged lists selected ids in selection order.
type SelectionChanged struct {
	Nodes []string
	Edges []string
}

// NodeHover identifies the hovered node.
type NodeHover struct {
	Node string
}

// NodeBlur identifies the node that lost hover.
type NodeBlur struct {
	Node string
}

// PointerPosition holds a pointer in both coordinate spaces.
type PointerPosition struct {
	Screen geom.Point
	Canvas geom.Point
}

// Click is the payload of every pointer topic: the selection at the time
// of the gesture and where it happened.
type Click struct {
	Nodes   []string
	Edges   []string
	Pointer PointerPosition
}

// JSON renders the click as
// {"nodes":[...],"edges":[...],"pointer":{"screen":{"x":..,"y":..},"canvas":{...}}}.
func (c Click) JSON() (string, error) {
	doc, err := selectionJSON(c.Nodes, c.Edges)
	if err != nil {
		return "", err
	}
	for _, f := range []struct {
		path string
		val  float64
	}{
		{"pointer.screen.x", c.Pointer.Screen.X},
		{"pointer.screen.y", c.Pointer.Screen.Y},
		{"pointer.canvas.x", c.Pointer.Canvas.X},
		{"pointer.canvas.y", c.Pointer.Canvas.Y},
	} {
		if doc, err = sjson.Set(doc, f.path, f.val); err != nil {
			return "", err
		}
	}
	return doc, nil
}

// JSON renders the selection as {"nodes":[...],"edges":[...]}.
func (s SelectionChanged) JSON() (string, error) {
	return selectionJSON(s.Nodes, s.Edges)
}

func selectionJSON(nodes, edges []string) (string, error) {
	if nodes == nil {
		nodes = []string{}
	}
	if edges == nil {
		edges = []string{}
	}
	doc, err := sjson.Set("{}", "nodes", nodes)
	if err != nil {
		return "", err
	}
	return sjson.Set(doc, "edges", edges)
}
