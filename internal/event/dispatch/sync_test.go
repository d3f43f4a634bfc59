package dispatch

import (
	"context"
	"errors"
	"testing"
)

type handlerFunc func(ctx context.Context, event any) error

func (f handlerFunc) Handle(ctx context.Context, event any) error { return f(ctx, event) }

func TestResult_IsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected bool
	}{
		{"success", Result{Success: true}, true},
		{"error", Result{Error: errors.New("boom")}, false},
		{"panic", Result{Panicked: true}, false},
		{"skipped", Result{Skipped: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsSuccess(); got != tt.expected {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSyncDispatcher_Dispatch(t *testing.T) {
	d := NewSyncDispatcher(nil)

	var got any
	result := d.Dispatch(context.Background(), "evt", handlerFunc(func(_ context.Context, event any) error {
		got = event
		return nil
	}))

	if !result.IsSuccess() {
		t.Fatalf("Dispatch() result = %+v, want success", result)
	}
	if got != "evt" {
		t.Errorf("handler received %v, want evt", got)
	}
	if s := d.Stats(); s.Dispatched != 1 || s.Failed != 0 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestSyncDispatcher_Error(t *testing.T) {
	d := NewSyncDispatcher(nil)
	want := errors.New("handler failed")

	result := d.Dispatch(context.Background(), nil, handlerFunc(func(context.Context, any) error {
		return want
	}))

	if !errors.Is(result.Error, want) {
		t.Errorf("Error = %v, want %v", result.Error, want)
	}
	if d.Stats().Failed != 1 {
		t.Errorf("Failed = %d, want 1", d.Stats().Failed)
	}
}

func TestSyncDispatcher_RecoversPanic(t *testing.T) {
	var reported any
	d := NewSyncDispatcher(func(_ any, v any, stack []byte) {
		reported = v
		if len(stack) == 0 {
			t.Error("expected a stack trace")
		}
	})

	result := d.Dispatch(context.Background(), nil, handlerFunc(func(context.Context, any) error {
		panic("kaboom")
	}))

	if !result.Panicked || result.PanicValue != "kaboom" {
		t.Errorf("result = %+v, want panic kaboom", result)
	}
	if reported != "kaboom" {
		t.Errorf("panic handler got %v", reported)
	}
	if d.Stats().Panicked != 1 {
		t.Errorf("Panicked = %d, want 1", d.Stats().Panicked)
	}
}

func TestSyncDispatcher_SkipsCancelledContext(t *testing.T) {
	d := NewSyncDispatcher(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	result := d.Dispatch(ctx, nil, handlerFunc(func(context.Context, any) error {
		called = true
		return nil
	}))

	if called {
		t.Error("handler ran with a cancelled context")
	}
	if !result.Skipped || !errors.Is(result.Error, context.Canceled) {
		t.Errorf("result = %+v, want skipped with context.Canceled", result)
	}
}
