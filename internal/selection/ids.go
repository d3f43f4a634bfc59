package selection

import (
	"fmt"
	"math"
	"strconv"
)

// ToIDs converts a loosely typed id list, as produced by script bindings and
// JSON decoding, into strings. Integral numbers become their decimal text.
// Anything that is not a list, nil included, is ErrInvalidInput.
func ToIDs(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []int:
		out := make([]string, len(list))
		for i, n := range list {
			out[i] = strconv.Itoa(n)
		}
		return out, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			id, err := toID(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = id
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidInput, v)
	}
}

func toID(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case float64:
		if id != math.Trunc(id) || math.IsInf(id, 0) {
			return "", fmt.Errorf("%w: non integral id %v", ErrInvalidInput, id)
		}
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: id of type %T", ErrInvalidInput, v)
	}
}
