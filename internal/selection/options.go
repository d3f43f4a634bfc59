package selection

import (
	"io"
	"log/slog"

	"github.com/dshills/graphsel/internal/event"
)

// Option keys recognised by Handler.SetOptions.
const (
	KeySelect               = "select"
	KeySelectConnectedEdges = "selectConnectedEdges"
)

// Options configures selection behaviour.
type Options struct {
	// Select enables selection. When false, selection does not change and
	// reads report nothing selected.
	Select bool

	// SelectConnectedEdges selects a node's edges along with the node.
	SelectConnectedEdges bool
}

// DefaultOptions returns both options enabled.
func DefaultOptions() Options {
	return Options{Select: true, SelectConnectedEdges: true}
}

// merge applies the recognised keys of m. Values that are not booleans are
// skipped and reported in the returned list.
func (o *Options) merge(m map[string]any) (skipped []string) {
	for key, v := range m {
		var dst *bool
		switch key {
		case KeySelect:
			dst = &o.Select
		case KeySelectConnectedEdges:
			dst = &o.SelectConnectedEdges
		default:
			continue
		}
		b, ok := v.(bool)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		*dst = b
	}
	return skipped
}

// HandlerOption configures a Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	options Options
	bus     event.Bus
	logger  *slog.Logger
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		options: DefaultOptions(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOptions sets the initial options.
func WithOptions(o Options) HandlerOption {
	return func(c *handlerConfig) {
		c.options = o
	}
}

// WithBus connects the handler to a bus. The handler publishes its events
// there and reconciles on events.TopicDataChanged.
func WithBus(b event.Bus) HandlerOption {
	return func(c *handlerConfig) {
		c.bus = b
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
