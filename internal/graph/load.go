package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Document is a serialisable graph.
type Document struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// yamlNode mirrors NodeSpec with lower case keys.
type yamlNode struct {
	ID      string  `yaml:"id"`
	Label   string  `yaml:"label"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Size    float64 `yaml:"size"`
	Shape   string  `yaml:"shape"`
	Color   string  `yaml:"color"`
	Cluster int     `yaml:"cluster"`
}

type yamlEdge struct {
	ID    string  `yaml:"id"`
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"`
}

type yamlDocument struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

// ParseYAML decodes a YAML graph document:
//
//	nodes:
//	  - {id: "1", x: 0, y: 0}
//	edges:
//	  - {id: e12, from: "1", to: "2"}
func ParseYAML(data []byte) (Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parse yaml graph: %w", err)
	}
	doc := Document{
		Nodes: make([]NodeSpec, 0, len(raw.Nodes)),
		Edges: make([]EdgeSpec, 0, len(raw.Edges)),
	}
	for _, n := range raw.Nodes {
		doc.Nodes = append(doc.Nodes, NodeSpec(n))
	}
	for _, e := range raw.Edges {
		doc.Edges = append(doc.Edges, EdgeSpec(e))
	}
	return doc, nil
}

// ParseJSON decodes a vis style JSON document. Ids may be strings or
// numbers; numbers are converted to their decimal text.
//
//	{"nodes":[{"id":1,"x":0,"y":0}],"edges":[{"from":1,"to":2}]}
func ParseJSON(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("parse json graph: invalid json")
	}
	root := gjson.ParseBytes(data)
	var doc Document
	root.Get("nodes").ForEach(func(_, v gjson.Result) bool {
		doc.Nodes = append(doc.Nodes, NodeSpec{
			ID:      v.Get("id").String(),
			Label:   v.Get("label").String(),
			X:       v.Get("x").Float(),
			Y:       v.Get("y").Float(),
			Size:    v.Get("size").Float(),
			Shape:   v.Get("shape").String(),
			Color:   v.Get("color").String(),
			Cluster: int(v.Get("cluster").Int()),
		})
		return true
	})
	root.Get("edges").ForEach(func(_, v gjson.Result) bool {
		doc.Edges = append(doc.Edges, EdgeSpec{
			ID:    v.Get("id").String(),
			From:  v.Get("from").String(),
			To:    v.Get("to").String(),
			Width: v.Get("width").Float(),
			Color: v.Get("color").String(),
		})
		return true
	})
	return doc, nil
}

// LoadFile reads a graph document, choosing the decoder by extension.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read graph file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Document{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
