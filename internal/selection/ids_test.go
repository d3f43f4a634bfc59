package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIDs(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"strings", []string{"a", "b"}, []string{"a", "b"}},
		{"ints", []int{1, 22}, []string{"1", "22"}},
		{"mixed", []any{"a", 1, int64(2), 3.0}, []string{"a", "1", "2", "3"}},
		{"empty", []any{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToIDs(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToIDs(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestToIDsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"string", "x"},
		{"number", 5},
		{"map", map[string]any{"id": "1"}},
		{"fractional id", []any{1.5}},
		{"nested list", []any{[]any{"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToIDs(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
