package event

import (
	"io"
	"log/slog"
)

// BusOption configures a Bus.
type BusOption func(*busConfig)

type busConfig struct {
	panicHandler PanicHandler
	logger       *slog.Logger
}

func defaultBusConfig() busConfig {
	return busConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithBusPanicHandler is told about every recovered handler panic.
func WithBusPanicHandler(h PanicHandler) BusOption {
	return func(c *busConfig) {
		if h != nil {
			c.panicHandler = h
		}
	}
}

// WithLogger sets the logger used for handler failures.
func WithLogger(l *slog.Logger) BusOption {
	return func(c *busConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
