package event

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/graphsel/internal/event/topic"
)

type ping struct{ N int }

func startedBus(t *testing.T, opts ...BusOption) Bus {
	t.Helper()
	b := NewBus(opts...)
	if err := b.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	t.Cleanup(func() { _ = b.Stop() })
	return b
}

func TestBus_StartStop(t *testing.T) {
	b := NewBus()

	if err := b.PublishSync(context.Background(), NewEvent[ping]("test.ping", ping{}, "t")); err != ErrBusNotRunning {
		t.Errorf("PublishSync() on stopped bus = %v, want ErrBusNotRunning", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := b.Start(); err != ErrBusAlreadyRunning {
		t.Errorf("second Start() = %v, want ErrBusAlreadyRunning", err)
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := b.Stop(); err != ErrBusNotRunning {
		t.Errorf("second Stop() = %v, want ErrBusNotRunning", err)
	}
}

func TestBus_PublishSyncDeliversInPriorityOrder(t *testing.T) {
	b := startedBus(t)

	var order []string
	record := func(name string) HandlerFunc {
		return func(context.Context, any) error {
			order = append(order, name)
			return nil
		}
	}
	mustSubscribe(t, b, "graph.data.changed", record("normal"))
	mustSubscribe(t, b, "graph.data.changed", record("low"), WithPriority(PriorityLow))
	mustSubscribe(t, b, "graph.**", record("critical"), WithPriority(PriorityCritical))
	mustSubscribe(t, b, "graph.node.*", record("unrelated"))

	if err := b.PublishSync(context.Background(), NewEvent("graph.data.changed", struct{}{}, "t")); err != nil {
		t.Fatalf("PublishSync() = %v", err)
	}

	want := []string{"critical", "normal", "low"}
	if len(order) != len(want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBus_HandlerErrorsAndPanicsDoNotStopDelivery(t *testing.T) {
	var panics int
	b := startedBus(t, WithBusPanicHandler(func(any, any) { panics++ }))

	reached := false
	mustSubscribe(t, b, "x.y", func(context.Context, any) error { return errors.New("fail") })
	mustSubscribe(t, b, "x.y", func(context.Context, any) error { panic("boom") })
	mustSubscribe(t, b, "x.y", func(context.Context, any) error {
		reached = true
		return nil
	})

	if err := b.PublishSync(context.Background(), NewEvent("x.y", 1, "t")); err != nil {
		t.Fatalf("PublishSync() = %v", err)
	}
	if !reached {
		t.Error("last handler was not reached")
	}
	if panics != 1 {
		t.Errorf("panic handler calls = %d, want 1", panics)
	}
	stats := b.Stats()
	if stats.HandlerErrors != 1 || stats.HandlerPanics != 1 || stats.HandlersExecuted != 3 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestBus_FilterAndOnce(t *testing.T) {
	b := startedBus(t)
	ctx := context.Background()

	var filtered, once int
	mustSubscribe(t, b, "n.*", func(context.Context, any) error {
		filtered++
		return nil
	}, WithFilter(func(e any) bool { return e.(Event[ping]).Payload.N > 1 }))
	mustSubscribe(t, b, "n.*", func(context.Context, any) error {
		once++
		return nil
	}, WithOnce())

	_ = b.PublishSync(ctx, NewEvent[ping]("n.a", ping{N: 1}, "t"))
	_ = b.PublishSync(ctx, NewEvent[ping]("n.a", ping{N: 2}, "t"))
	_ = b.PublishSync(ctx, NewEvent[ping]("n.a", ping{N: 3}, "t"))

	if filtered != 2 {
		t.Errorf("filtered handler calls = %d, want 2", filtered)
	}
	if once != 1 {
		t.Errorf("once handler calls = %d, want 1", once)
	}
	if n := b.Stats().ActiveSubscribers; n != 1 {
		t.Errorf("ActiveSubscribers = %d, want 1", n)
	}
}

func TestBus_SubscribeValidation(t *testing.T) {
	b := NewBus()

	if _, err := b.Subscribe("a.b", nil); err != ErrNilHandler {
		t.Errorf("nil handler: %v", err)
	}
	if _, err := b.SubscribeFunc("a..b", func(context.Context, any) error { return nil }); err != ErrInvalidTopic {
		t.Errorf("bad topic: %v", err)
	}
	if err := b.Unsubscribe(nil); err != ErrSubscriptionNotFound {
		t.Errorf("Unsubscribe(nil) = %v", err)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := startedBus(t)
	calls := 0
	sub := mustSubscribe(t, b, "a.b", func(context.Context, any) error {
		calls++
		return nil
	})

	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe() = %v", err)
	}
	if err := b.Unsubscribe(sub); err != ErrSubscriptionNotFound {
		t.Errorf("second Unsubscribe() = %v", err)
	}
	_ = b.PublishSync(context.Background(), NewEvent("a.b", 0, "t"))
	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe", calls)
	}
}

func TestBus_RejectsEventsWithoutTopic(t *testing.T) {
	b := startedBus(t)
	if err := b.PublishSync(context.Background(), "not an event"); err != ErrInvalidEvent {
		t.Errorf("PublishSync() = %v, want ErrInvalidEvent", err)
	}
}

func TestSubscribePayload(t *testing.T) {
	b := startedBus(t)
	ctx := context.Background()

	var got []int
	_, err := SubscribePayload(b, "p.*", func(_ context.Context, p ping) error {
		got = append(got, p.N)
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribePayload() = %v", err)
	}

	_ = Publish(ctx, b, "p.typed", ping{N: 1}, "t")
	_ = b.PublishSync(ctx, Envelope{Topic: "p.env", Payload: ping{N: 2}})
	_ = b.PublishSync(ctx, Envelope{Topic: "p.env", Payload: "wrong type"})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("payloads = %v, want [1 2]", got)
	}
}

func mustSubscribe(t *testing.T, b Bus, pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) Subscription {
	t.Helper()
	sub, err := b.SubscribeFunc(pattern, fn, opts...)
	if err != nil {
		t.Fatalf("SubscribeFunc(%q) = %v", pattern, err)
	}
	return sub
}
