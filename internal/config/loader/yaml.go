package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads a YAML file.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a loader for path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{fs: OSFS{}, path: path}
}

// NewYAMLLoaderWithFS creates a loader reading through fsys.
func NewYAMLLoaderWithFS(fsys FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{fs: fsys, path: path}
}

// Load implements Loader.
func (l *YAMLLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseYAML(l.path, data)
}

// ParseYAML decodes YAML data. Integers decode as int and are normalised to
// int64 so both file formats produce the same value types.
func ParseYAML(source string, data []byte) (map[string]any, error) {
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ParseError{Path: source, Line: lineOf(err), Message: err.Error(), Err: err}
	}
	normalize(config)
	return config, nil
}

// lineOf extracts the line from yaml.v3 syntax errors of the form
// "yaml: line N: message".
func lineOf(err error) int {
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}

func normalize(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case map[string]any:
		normalize(val)
		return val
	case []any:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
