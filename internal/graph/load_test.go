package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	src := []byte(`
nodes:
  - id: "1"
    label: one
    x: 0
    y: 0
  - id: "2"
    x: 100
    y: 0
    shape: box
    cluster: 3
edges:
  - id: e12
    from: "1"
    to: "2"
    width: 6
`)
	doc, err := ParseYAML(src)
	require.NoError(t, err)

	want := Document{
		Nodes: []NodeSpec{
			{ID: "1", Label: "one"},
			{ID: "2", X: 100, Shape: ShapeBox, Cluster: 3},
		},
		Edges: []EdgeSpec{{ID: "e12", From: "1", To: "2", Width: 6}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("ParseYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLError(t *testing.T) {
	_, err := ParseYAML([]byte("nodes: [unterminated"))
	assert.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	src := []byte(`{
		"nodes": [{"id": 1, "x": 0, "y": 0}, {"id": "b", "x": 10, "size": 4}],
		"edges": [{"id": "e", "from": 1, "to": "b"}]
	}`)
	doc, err := ParseJSON(src)
	require.NoError(t, err)

	want := Document{
		Nodes: []NodeSpec{{ID: "1"}, {ID: "b", X: 10, Size: 4}},
		Edges: []EdgeSpec{{ID: "e", From: "1", To: "b"}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("ParseJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"nodes": [`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "g.yml")
	require.NoError(t, os.WriteFile(yml, []byte("nodes:\n  - id: a\n"), 0o600))
	doc, err := LoadFile(yml)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 1)

	js := filepath.Join(dir, "g.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"nodes":[{"id":"a"},{"id":"b"}]}`), 0o600))
	doc, err = LoadFile(js)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 2)

	txt := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o600))
	_, err = LoadFile(txt)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
