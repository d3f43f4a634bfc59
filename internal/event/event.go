package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/graphsel/internal/event/topic"
)

// Event is a typed, immutable notification.
type Event[T any] struct {
	// Type is the hierarchical topic, e.g. "graph.selection.changed".
	Type topic.Topic

	// Payload carries the event data.
	Payload T

	// Metadata is attached to every event.
	Metadata Metadata
}

// Metadata identifies an event instance.
type Metadata struct {
	ID        string
	Timestamp time.Time
	// Source names the publishing component ("selection", "graph", "mouse").
	Source string
}

// NewEvent creates an event with fresh metadata.
func NewEvent[T any](eventType topic.Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic.
func (e Event[T]) EventTopic() topic.Topic {
	return e.Type
}

// EventMetadata returns the event's metadata.
func (e Event[T]) EventMetadata() Metadata {
	return e.Metadata
}

// TopicProvider is implemented by anything the bus can route.
type TopicProvider interface {
	EventTopic() topic.Topic
}

// Envelope carries an untyped payload, used by bridges such as the Lua
// script driver that do not know payload types at compile time.
type Envelope struct {
	Topic    topic.Topic
	Payload  any
	Metadata Metadata
}

// EventTopic returns the envelope's topic.
func (e Envelope) EventTopic() topic.Topic {
	return e.Topic
}

// NewEnvelope wraps a typed event.
func NewEnvelope[T any](e Event[T]) Envelope {
	return Envelope{Topic: e.Type, Payload: e.Payload, Metadata: e.Metadata}
}
