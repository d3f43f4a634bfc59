package script

import "errors"

var (
	// ErrClosed is returned when running a script on a closed Runner.
	ErrClosed = errors.New("script runner is closed")
)
