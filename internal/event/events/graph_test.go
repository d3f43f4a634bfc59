package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/graphsel/internal/geom"
)

func TestClickJSON(t *testing.T) {
	c := Click{
		Nodes: []string{"1"},
		Edges: []string{"e12"},
		Pointer: PointerPosition{
			Screen: geom.Point{X: 10, Y: 20},
			Canvas: geom.Point{X: 1.5, Y: -2},
		},
	}

	doc, err := c.JSON()
	require.NoError(t, err)

	assert.Equal(t, "1", gjson.Get(doc, "nodes.0").String())
	assert.Equal(t, "e12", gjson.Get(doc, "edges.0").String())
	assert.Equal(t, 10.0, gjson.Get(doc, "pointer.screen.x").Float())
	assert.Equal(t, -2.0, gjson.Get(doc, "pointer.canvas.y").Float())
}

func TestSelectionJSON_EmptyListsAreArrays(t *testing.T) {
	doc, err := SelectionChanged{}.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, doc)
}

func TestTopicsAreValid(t *testing.T) {
	for _, tp := range []interface{ IsValid() bool }{
		TopicDataChanged, TopicRedrawRequested, TopicSelectionChanged,
		TopicNodeHovered, TopicNodeBlurred, TopicClick, TopicDoubleClick, TopicHold,
	} {
		assert.True(t, tp.IsValid(), "%v", tp)
	}
}
