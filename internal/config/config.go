// Package config holds the application settings and loads them from
// defaults, an optional TOML or YAML file and GRAPHSEL_ environment
// variables, in increasing precedence.
//
// Example TOML file:
//
//	[selection]
//	select = true
//	selectConnectedEdges = false
//
//	[mouse]
//	doubleClickTime = "400ms"
//	holdTime = "600ms"
package config

import (
	"fmt"
	"time"

	"github.com/dshills/graphsel/internal/config/loader"
)

// Config is the complete application configuration.
type Config struct {
	Selection SelectionConfig
	Mouse     MouseConfig
	View      ViewConfig
	Logging   LoggingConfig
}

// SelectionConfig mirrors the selection handler options.
type SelectionConfig struct {
	Select               bool
	SelectConnectedEdges bool
}

// MouseConfig tunes pointer gesture recognition.
type MouseConfig struct {
	DoubleClickTime     time.Duration
	DoubleClickDistance float64
	HoldTime            time.Duration
}

// ViewConfig is the initial viewport.
type ViewConfig struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// Defaults returns the built in configuration as a nested map, the bottom
// layer of every load.
func Defaults() map[string]any {
	return map[string]any{
		"selection": map[string]any{
			"select":               true,
			"selectConnectedEdges": true,
		},
		"mouse": map[string]any{
			"doubleClickTime":     "500ms",
			"doubleClickDistance": 2.0,
			"holdTime":            "500ms",
		},
		"view": map[string]any{
			"scale":   1.0,
			"offsetX": 0.0,
			"offsetY": 0.0,
		},
		"logging": map[string]any{
			"level":  "info",
			"format": "text",
		},
	}
}

// Default returns the built in configuration.
func Default() *Config {
	cfg, err := FromMap(Defaults())
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Load merges defaults, the file at path (skipped when path is empty or the
// file does not exist) and the environment.
func Load(path string) (*Config, error) {
	layers := []loader.Loader{}
	if path != "" {
		l, err := loader.ForPath(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	layers = append(layers, loader.NewEnvLoader(loader.EnvPrefix))
	return LoadLayers(layers...)
}

// LoadLayers merges the given sources over the defaults, later sources
// winning.
func LoadLayers(layers ...loader.Loader) (*Config, error) {
	merged := Defaults()
	for _, l := range layers {
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}
	return FromMap(merged)
}

// FromMap converts a merged map into a Config. Missing keys fall back to the
// defaults; a value of the wrong type is a *TypeError.
func FromMap(m map[string]any) (*Config, error) {
	a := &accessor{data: m, defaults: Defaults()}
	cfg := &Config{
		Selection: SelectionConfig{
			Select:               a.bool("selection.select"),
			SelectConnectedEdges: a.bool("selection.selectConnectedEdges"),
		},
		Mouse: MouseConfig{
			DoubleClickTime:     a.duration("mouse.doubleClickTime"),
			DoubleClickDistance: a.float("mouse.doubleClickDistance"),
			HoldTime:            a.duration("mouse.holdTime"),
		},
		View: ViewConfig{
			Scale:   a.float("view.scale"),
			OffsetX: a.float("view.offsetX"),
			OffsetY: a.float("view.offsetY"),
		},
		Logging: LoggingConfig{
			Level:  a.string("logging.level"),
			Format: a.string("logging.format"),
		},
	}
	if a.err != nil {
		return nil, a.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.View.Scale <= 0:
		return &ValidationError{Path: "view.scale", Message: "must be positive"}
	case c.Mouse.DoubleClickTime < 0:
		return &ValidationError{Path: "mouse.doubleClickTime", Message: "must not be negative"}
	case c.Mouse.HoldTime < 0:
		return &ValidationError{Path: "mouse.holdTime", Message: "must not be negative"}
	case c.Mouse.DoubleClickDistance < 0:
		return &ValidationError{Path: "mouse.doubleClickDistance", Message: "must not be negative"}
	}
	return nil
}

// SelectionOptions returns the selection section in the key form accepted
// by the selection handler.
func (c *Config) SelectionOptions() map[string]any {
	return map[string]any{
		"select":               c.Selection.Select,
		"selectConnectedEdges": c.Selection.SelectConnectedEdges,
	}
}
