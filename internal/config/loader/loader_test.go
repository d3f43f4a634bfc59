package loader

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFS map[string]string

func (m mapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"selection": map[string]any{"select": true, "selectConnectedEdges": true},
		"logging":   map[string]any{"level": "info"},
	}
	src := map[string]any{
		"selection": map[string]any{"selectConnectedEdges": false},
		"logging":   "flat",
		"extra":     int64(1),
	}

	got := DeepMerge(dst, src)

	want := map[string]any{
		"selection": map[string]any{"select": true, "selectConnectedEdges": false},
		"logging":   "flat",
		"extra":     int64(1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepMerge() mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, DeepMerge(nil, nil))
}

func TestGetSetByPath(t *testing.T) {
	m := map[string]any{}
	SetByPath(m, "mouse.holdTime", "1s")
	SetByPath(m, "top", 1)

	v, ok := GetByPath(m, "mouse.holdTime")
	require.True(t, ok)
	assert.Equal(t, "1s", v)

	_, ok = GetByPath(m, "mouse.missing")
	assert.False(t, ok)
	_, ok = GetByPath(m, "top.below")
	assert.False(t, ok)
}

func TestTOMLLoader(t *testing.T) {
	fsys := mapFS{"/c.toml": "[selection]\nselect = false\n\n[mouse]\ndoubleClickDistance = 3\n"}

	got, err := NewTOMLLoaderWithFS(fsys, "/c.toml").Load()
	require.NoError(t, err)

	want := map[string]any{
		"selection": map[string]any{"select": false},
		"mouse":     map[string]any{"doubleClickDistance": int64(3)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	got, err := NewTOMLLoaderWithFS(mapFS{}, "/none.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTOMLLoaderParseError(t *testing.T) {
	fsys := mapFS{"/bad.toml": "[selection]\nselect = \n"}

	_, err := NewTOMLLoaderWithFS(fsys, "/bad.toml").Load()

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/bad.toml", pe.Path)
	assert.Positive(t, pe.Line)
}

func TestYAMLLoader(t *testing.T) {
	fsys := mapFS{"/c.yaml": "selection:\n  select: false\nmouse:\n  holdTime: 1s\n  doubleClickDistance: 4\n"}

	got, err := NewYAMLLoaderWithFS(fsys, "/c.yaml").Load()
	require.NoError(t, err)

	want := map[string]any{
		"selection": map[string]any{"select": false},
		"mouse":     map[string]any{"holdTime": "1s", "doubleClickDistance": int64(4)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLLoaderParseError(t *testing.T) {
	fsys := mapFS{"/bad.yaml": "selection:\n  select: [\n"}

	_, err := NewYAMLLoaderWithFS(fsys, "/bad.yaml").Load()

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestForPath(t *testing.T) {
	l, err := ForPath("x.TOML")
	require.NoError(t, err)
	assert.IsType(t, &TOMLLoader{}, l)

	l, err = ForPath("x.yml")
	require.NoError(t, err)
	assert.IsType(t, &YAMLLoader{}, l)

	_, err = ForPath("x.ini")
	assert.Error(t, err)
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	l.environ = func() []string {
		return []string{
			"GRAPHSEL_LOG_LEVEL=debug",
			"GRAPHSEL_SELECT=off",
			"GRAPHSEL_MOUSE_HOLD_TIME=750ms",
			"GRAPHSEL_VIEW_SCALE=1.5",
			"GRAPHSEL_VIEW_OFFSET_X=10",
			"GRAPHSEL_NOSECTION=1",
			"HOME=/root",
		}
	}

	got, err := l.Load()
	require.NoError(t, err)

	want := map[string]any{
		"logging":   map[string]any{"level": "debug"},
		"selection": map[string]any{"select": false},
		"mouse":     map[string]any{"holdTime": 750 * time.Millisecond},
		"view":      map[string]any{"scale": 1.5, "offsetX": int64(10)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	tests := map[string]string{
		"GRAPHSEL_MOUSE_DOUBLE_CLICK_TIME": "mouse.doubleClickTime",
		"GRAPHSEL_VIEW_SCALE":              "view.scale",
		"GRAPHSEL_SOLO":                    "",
	}
	for in, want := range tests {
		if got := l.envToPath(in); got != want {
			t.Errorf("envToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
