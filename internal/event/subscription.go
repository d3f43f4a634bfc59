package event

import (
	"sync/atomic"

	"github.com/dshills/graphsel/internal/event/topic"
)

// SubscriptionState is the lifecycle state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive receives events.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStateCancelled is terminal.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is a handle on a registered handler.
type Subscription interface {
	ID() string
	Topic() topic.Topic
	State() SubscriptionState
	IsActive() bool
	Cancel()
}

// SubscriptionConfig holds per-subscription settings.
type SubscriptionConfig struct {
	Priority Priority
	Filter   FilterFunc
	// Once cancels the subscription after its first successful delivery.
	Once bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithPriority sets the subscription priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Priority = p
	}
}

// WithFilter sets a delivery predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce makes the subscription fire at most once.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

type subscription struct {
	id      string
	topic   topic.Topic
	handler Handler
	config  SubscriptionConfig
	state   atomic.Int32
	seq     uint64
}

func newSubscription(id string, pattern topic.Topic, handler Handler, opts ...SubscriptionOption) *subscription {
	cfg := SubscriptionConfig{Priority: PriorityNormal}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &subscription{id: id, topic: pattern, handler: handler, config: cfg}
}

func (s *subscription) ID() string { return s.id }

func (s *subscription) Topic() topic.Topic { return s.topic }

func (s *subscription) State() SubscriptionState { return SubscriptionState(s.state.Load()) }

func (s *subscription) IsActive() bool { return s.State() == SubscriptionStateActive }

func (s *subscription) Cancel() {
	s.state.Store(int32(SubscriptionStateCancelled))
}

func (s *subscription) shouldDeliver(event any) bool {
	if !s.IsActive() {
		return false
	}
	return s.config.Filter == nil || s.config.Filter(event)
}
