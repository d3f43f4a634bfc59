package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit is returned by Run when the user asks to leave.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")
	ErrNoBackend      = errors.New("no backend")

	// ErrNoScript is returned by RunScript when neither the call nor the
	// options name a script.
	ErrNoScript = errors.New("no script")
)

// ComponentError ties a failure to the part of graphsel that raised it,
// such as "graph" while loading or "script" while running.
type ComponentError struct {
	Component string
	Action    string
	Err       error
}

func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	parts := []string{e.Component}
	if e.Action != "" {
		parts = append(parts, e.Action)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports identity with another *ComponentError and otherwise defers to
// the cause, so selection.ErrNotFound still matches through a script error.
func (e *ComponentError) Is(target error) bool {
	if e == nil {
		return false
	}
	if other, ok := target.(*ComponentError); ok {
		return e == other
	}
	return errors.Is(e.Err, target)
}

// PanicError is logged when handling one input event panicked.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("panic: %v", e.Value)
	if e.Stack == "" {
		return msg
	}
	return msg + "\n" + e.Stack
}

// shutdownErrors gathers the failures of the teardown steps.
type shutdownErrors []error

func (s *shutdownErrors) add(err error) {
	if err != nil {
		*s = append(*s, err)
	}
}

// err is nil when every step succeeded.
func (s shutdownErrors) err() error {
	switch len(s) {
	case 0:
		return nil
	case 1:
		return s[0]
	default:
		return fmt.Errorf("%d shutdown steps failed: %w", len(s), errors.Join(s...))
	}
}
