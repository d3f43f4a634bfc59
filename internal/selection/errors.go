package selection

import (
	"errors"
	"fmt"

	"github.com/dshills/graphsel/internal/graph"
)

var (
	// ErrInvalidInput is returned when a bulk selection receives a value
	// that is not a sequence of ids.
	ErrInvalidInput = errors.New("selection must be a list of ids")

	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")
)

// NotFoundError names an id that is absent from the dataset.
type NotFoundError struct {
	Kind graph.Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Kind, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
