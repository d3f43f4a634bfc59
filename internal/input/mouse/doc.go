// Package mouse turns raw pointer events into graph gestures.
//
// A Handler tracks presses, releases and motion and drives a Selector:
//
//   - Click: press and release in place selects the element under the
//     pointer and publishes a click event.
//   - Ctrl, Meta or Shift click toggles the element in the selection.
//   - Double click publishes a doubleclick event.
//   - Hold: a press kept longer than Config.HoldTime toggles the element
//     and publishes a hold event. Tick detects holds while the button is
//     down; release catches any that Tick missed.
//   - Move without a button hovers the element under the pointer.
//   - Left drag pans the view and the wheel zooms it.
//
// Handler guards its own state with a mutex, but the Selector it drives is
// usually single-owner, so events and ticks should come from one goroutine.
package mouse
