package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrBusNotRunning is returned when publishing on a bus that was not started.
	ErrBusNotRunning = errors.New("event bus is not running")

	// ErrBusAlreadyRunning is returned when Start is called twice.
	ErrBusAlreadyRunning = errors.New("event bus is already running")

	// ErrInvalidEvent is returned when the topic of an event cannot be determined.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInvalidTopic is returned for an empty or malformed subscription topic.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrSubscriptionNotFound is returned when unsubscribing an unknown subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// HandlerError records a handler failure for a subscription.
type HandlerError struct {
	SubscriptionID string
	Topic          string
	Err            error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler error for subscription " + e.SubscriptionID + " on topic " + e.Topic + ": " + e.Err.Error()
}

// Unwrap returns the handler's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
