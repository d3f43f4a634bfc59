package event

import (
	"context"

	"github.com/dshills/graphsel/internal/event/topic"
)

// SubscribePayload subscribes a handler that receives the payload of
// Event[T] or of an Envelope carrying a T. Events of other payload types
// are skipped.
func SubscribePayload[T any](b Bus, pattern topic.Topic, fn func(ctx context.Context, payload T) error, opts ...SubscriptionOption) (Subscription, error) {
	return b.Subscribe(pattern, HandlerFunc(func(ctx context.Context, event any) error {
		switch e := event.(type) {
		case Event[T]:
			return fn(ctx, e.Payload)
		case Envelope:
			if p, ok := e.Payload.(T); ok {
				return fn(ctx, p)
			}
		}
		return nil
	}), opts...)
}

// Publish is shorthand for publishing a typed payload synchronously.
func Publish[T any](ctx context.Context, b Bus, t topic.Topic, payload T, source string) error {
	return b.PublishSync(ctx, NewEvent(t, payload, source))
}
