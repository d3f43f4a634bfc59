// Package dispatch runs event handlers on behalf of the bus.
//
// Handlers run synchronously in the publisher's goroutine. A panicking
// handler is recovered and reported through a PanicHandler so that one
// faulty subscriber cannot take down the pointer loop that published.
package dispatch
