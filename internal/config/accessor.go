package config

import (
	"fmt"
	"time"

	"github.com/dshills/graphsel/internal/config/loader"
)

// accessor reads typed values from a merged map. The first failure is kept
// in err and later reads return zero values.
type accessor struct {
	data     map[string]any
	defaults map[string]any
	err      error
}

func (a *accessor) get(path string) any {
	if v, ok := loader.GetByPath(a.data, path); ok {
		return v
	}
	v, _ := loader.GetByPath(a.defaults, path)
	return v
}

func (a *accessor) fail(path, expected string, v any) {
	if a.err == nil {
		a.err = &TypeError{Path: path, Expected: expected, Actual: fmt.Sprintf("%T", v)}
	}
}

func (a *accessor) bool(path string) bool {
	if a.err != nil {
		return false
	}
	v := a.get(path)
	b, ok := v.(bool)
	if !ok {
		a.fail(path, "boolean", v)
	}
	return b
}

func (a *accessor) string(path string) string {
	if a.err != nil {
		return ""
	}
	v := a.get(path)
	s, ok := v.(string)
	if !ok {
		a.fail(path, "string", v)
	}
	return s
}

func (a *accessor) float(path string) float64 {
	if a.err != nil {
		return 0
	}
	switch v := a.get(path).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		a.fail(path, "number", v)
		return 0
	}
}

// duration accepts duration strings and integer milliseconds.
func (a *accessor) duration(path string) time.Duration {
	if a.err != nil {
		return 0
	}
	switch v := a.get(path).(type) {
	case time.Duration:
		return v
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			a.err = fmt.Errorf("invalid duration at %s: %w", path, err)
		}
		return d
	case int64:
		return time.Duration(v) * time.Millisecond
	case int:
		return time.Duration(v) * time.Millisecond
	default:
		a.fail(path, "duration", v)
		return 0
	}
}
