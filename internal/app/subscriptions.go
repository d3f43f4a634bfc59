package app

import (
	"context"
	"sync"

	"github.com/dshills/graphsel/internal/event"
	"github.com/dshills/graphsel/internal/event/events"
	"github.com/dshills/graphsel/internal/event/topic"
)

// TopicPointerAll matches every pointer gesture topic.
const TopicPointerAll topic.Topic = "graph.pointer.*"

// subscriptionManager owns the application's bus subscriptions.
type subscriptionManager struct {
	mu            sync.Mutex
	app           *Application
	subscriptions []event.Subscription
}

func newSubscriptionManager(app *Application) *subscriptionManager {
	return &subscriptionManager{app: app}
}

// setupSubscriptions wires the bus to the renderer, metrics and logs.
func (sm *subscriptionManager) setupSubscriptions() error {
	setups := []func() error{
		sm.subscribeRedraw,
		sm.subscribeSelectionChanges,
		sm.subscribeDataChanges,
		sm.subscribePointerEvents,
	}
	for _, setup := range setups {
		if err := setup(); err != nil {
			sm.cleanup()
			return NewComponentError("subscriptions", "setup", err)
		}
	}
	return nil
}

func (sm *subscriptionManager) subscribeRedraw() error {
	sub, err := event.SubscribePayload(sm.app.eventBus, events.TopicRedrawRequested, sm.handleRedraw)
	if err != nil {
		return err
	}
	sm.addSubscription(sub)
	return nil
}

func (sm *subscriptionManager) subscribeSelectionChanges() error {
	sub, err := event.SubscribePayload(sm.app.eventBus, events.TopicSelectionChanged, sm.handleSelectionChanged)
	if err != nil {
		return err
	}
	sm.addSubscription(sub)
	return nil
}

// subscribeDataChanges runs after the selection handler's critical
// priority reconcile, so the redraw sees pruned state.
func (sm *subscriptionManager) subscribeDataChanges() error {
	sub, err := event.SubscribePayload(sm.app.eventBus, events.TopicDataChanged, sm.handleDataChanged,
		event.WithPriority(event.PriorityLow))
	if err != nil {
		return err
	}
	sm.addSubscription(sub)
	return nil
}

func (sm *subscriptionManager) subscribePointerEvents() error {
	sub, err := sm.app.eventBus.Subscribe(TopicPointerAll, event.HandlerFunc(sm.handlePointerEvent))
	if err != nil {
		return err
	}
	sm.addSubscription(sub)
	return nil
}

func (sm *subscriptionManager) addSubscription(sub event.Subscription) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.subscriptions = append(sm.subscriptions, sub)
}

// cleanup unsubscribes all managed subscriptions. Idempotent.
func (sm *subscriptionManager) cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, sub := range sm.subscriptions {
		if sub != nil {
			_ = sm.app.eventBus.Unsubscribe(sub)
		}
	}
	sm.subscriptions = nil
}

func (sm *subscriptionManager) handleRedraw(_ context.Context, _ events.RedrawRequested) error {
	if r := sm.app.Renderer(); r != nil {
		r.MarkDirty()
	}
	return nil
}

func (sm *subscriptionManager) handleSelectionChanged(_ context.Context, ev events.SelectionChanged) error {
	sm.app.metrics.RecordSelectionChange()
	sm.app.logger.Debug("selection changed", "nodes", len(ev.Nodes), "edges", len(ev.Edges))
	return nil
}

func (sm *subscriptionManager) handleDataChanged(_ context.Context, _ events.DataChanged) error {
	nodes, edges := sm.app.graph.Len()
	sm.app.logger.Debug("graph changed", "nodes", nodes, "edges", edges)
	if r := sm.app.Renderer(); r != nil {
		r.MarkDirty()
	}
	return nil
}

// handlePointerEvent logs every gesture event with its payload as JSON.
func (sm *subscriptionManager) handlePointerEvent(_ context.Context, ev any) error {
	e, ok := ev.(event.Event[events.Click])
	if !ok {
		return nil
	}
	doc, err := e.Payload.JSON()
	if err != nil {
		return err
	}
	sm.app.logger.Debug("pointer event", "topic", e.Type, "payload", doc)
	return nil
}
