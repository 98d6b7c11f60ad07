package core

import "time"

// EventType identifies a discrete input event.
type EventType int

const (
	EventPointerDown EventType = iota
	EventPointerUp
	EventKeyDown
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Button identifies a pointer button. Only ButtonPrimary drives the simulation.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Key represents a semantic key, abstracted from frontend key codes.
type Key int

const (
	KeyNone Key = iota
	KeyRune      // printable character, see Event.Rune
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
)

// Event is a single pointer or keyboard event delivered to the simulation.
type Event struct {
	Type   EventType
	Pos    Point  // pointer events
	Button Button // pointer events
	Key    Key    // key events
	Rune   rune   // set when Key == KeyRune
}

// PointerDown creates a pointer-press event.
func PointerDown(p Point, b Button) Event {
	return Event{Type: EventPointerDown, Pos: p, Button: b}
}

// PointerUp creates a pointer-release event.
func PointerUp(p Point, b Button) Event {
	return Event{Type: EventPointerUp, Pos: p, Button: b}
}

// KeyDown creates a key event for a non-printable key.
func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// RuneDown creates a key event for a printable character.
func RuneDown(r rune) Event {
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r}
}

// InputFrame is everything the simulation consumes for one tick: the current
// pointer position, the events queued since the previous tick (in arrival order)
// and a monotonic clock.
type InputFrame struct {
	Pointer Point
	Events  []Event
	Clock   time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push queues an event for this frame. Pointer events also move the pointer.
func (f *InputFrame) Push(e Event) {
	if e.Type != EventKeyDown {
		f.Pointer = e.Pos
	}
	f.Events = append(f.Events, e)
}

// MoveTo updates the pointer position without queuing an event.
func (f *InputFrame) MoveTo(p Point) {
	f.Pointer = p
}

// Clear drops queued events for the next frame. Pointer and clock are kept.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
