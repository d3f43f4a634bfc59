package event

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/graphsel/internal/event/dispatch"
	"github.com/dshills/graphsel/internal/event/topic"
)

// Bus routes events to subscriptions.
type Bus interface {
	// PublishSync delivers event to every matching handler before returning.
	PublishSync(ctx context.Context, event any) error

	Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)
	SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)
	Unsubscribe(sub Subscription) error

	Start() error
	Stop() error

	Stats() Stats
	IsRunning() bool
}

type bus struct {
	registry   *Registry
	dispatcher *dispatch.SyncDispatcher
	config     busConfig

	running atomic.Bool

	eventsPublished atomic.Uint64
}

// NewBus creates a stopped bus.
func NewBus(opts ...BusOption) Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	b := &bus{
		registry: NewRegistry(),
		config:   config,
	}
	b.dispatcher = dispatch.NewSyncDispatcher(func(event any, v any, stack []byte) {
		b.config.logger.Error("event handler panicked",
			"topic", topicOf(event), "panic", v, "stack", string(stack))
		if b.config.panicHandler != nil {
			b.config.panicHandler(event, v)
		}
	})
	return b
}

func (b *bus) Start() error {
	if !b.running.CompareAndSwap(false, true) {
		return ErrBusAlreadyRunning
	}
	return nil
}

func (b *bus) Stop() error {
	if !b.running.Swap(false) {
		return ErrBusNotRunning
	}
	return nil
}

func (b *bus) IsRunning() bool {
	return b.running.Load()
}

// PublishSync runs matching handlers in priority order. Handler errors and
// panics are counted and logged but never abort delivery to the remaining
// handlers, and are not returned to the publisher.
func (b *bus) PublishSync(ctx context.Context, event any) error {
	if !b.running.Load() {
		return ErrBusNotRunning
	}
	t := topicOf(event)
	if t == "" {
		return ErrInvalidEvent
	}

	subs := b.registry.MatchActive(t)
	if len(subs) == 0 {
		return nil
	}
	b.eventsPublished.Add(1)

	for _, sub := range subs {
		if !sub.shouldDeliver(event) {
			continue
		}
		result := b.dispatcher.Dispatch(ctx, event, sub.handler)
		if result.Error != nil && !result.Skipped {
			err := &HandlerError{SubscriptionID: sub.id, Topic: t.String(), Err: result.Error}
			b.config.logger.Warn("event handler failed", "err", err)
		}
		if sub.config.Once && result.Success {
			sub.Cancel()
			b.registry.Remove(sub.id)
		}
	}
	return nil
}

func (b *bus) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	sub := newSubscription(uuid.NewString(), pattern, handler, opts...)
	b.registry.Add(sub)
	return sub, nil
}

func (b *bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

func (b *bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()
	if !b.registry.Remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (b *bus) Stats() Stats {
	ds := b.dispatcher.Stats()
	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		HandlersExecuted:  ds.Dispatched,
		HandlerErrors:     ds.Failed,
		HandlerPanics:     ds.Panicked,
		ActiveSubscribers: b.registry.CountActive(),
	}
}

func topicOf(event any) topic.Topic {
	if tp, ok := event.(TopicProvider); ok {
		return tp.EventTopic()
	}
	return ""
}
