// Package backend provides the terminal surface the graph is drawn on.
package backend

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a true color or the terminal's default color.
type Color struct {
	colorful.Color
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB wraps a colorful color.
func RGB(c colorful.Color) Color {
	return Color{Color: c}
}

// Equals compares two colors by their 8 bit components.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	r1, g1, b1 := c.RGB255()
	r2, g2, b2 := other.RGB255()
	return r1 == r2 && g1 == g2 && b1 == b2
}

// Style is how a cell is drawn.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Underline  bool
	Reverse    bool
}

// DefaultStyle uses the terminal's default colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Equals compares two styles.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Bold == other.Bold &&
		s.Underline == other.Underline &&
		s.Reverse == other.Reverse
}

// Cell is a single screen cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell is a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// Equals compares two cells.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equals(other.Style)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt wakes a blocked PollEvent.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType
	When time.Time

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone ModMask = 0
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state. Terminals report the held
// button with every mouse event rather than press and release edges.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is a character cell display with an event source.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell Cell)

	// GetCell returns the cell at the given position, or an empty cell for
	// positions outside the screen.
	GetCell(x, y int) Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes changes to the display.
	Show()

	// PollEvent waits for and returns the next event.
	PollEvent() Event

	// PostEvent queues a synthetic key or interrupt event.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for tests and headless runs.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	shown         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() { b.shown++ }

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shown
}

// Text returns row y as a string, for tests.
func (b *NullBackend) Text(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height, When: time.Now()})
}
