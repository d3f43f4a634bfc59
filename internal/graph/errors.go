package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when adding an element whose id is taken.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrUnknownNode is returned when an operation names a missing node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge is returned when an operation names a missing edge.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrUnsupportedFormat is returned by LoadFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported graph file format")
)

func unknown(k Kind, id string) error {
	if k == KindEdge {
		return fmt.Errorf("edge %q: %w", id, ErrUnknownEdge)
	}
	return fmt.Errorf("node %q: %w", id, ErrUnknownNode)
}
