package config

import "fmt"

// TypeError reports a setting whose value has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// ValidationError reports a setting whose value is out of range.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Path, e.Message)
}
