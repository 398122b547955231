package vdom

import "errors"

// Event is the opaque platform event handed to a listener binding.
// The core never inspects it; translation into a typed payload
// belongs to the mapper registered with the binding.
type Event any

// ErrUnrecognizedEventPayload reports that a platform event could not
// be coerced into the typed shape a listener expects. It surfaces at
// the dispatch boundary and never aborts a diff or apply pass.
var ErrUnrecognizedEventPayload = errors.New("vdom: unrecognized event payload")

// Mapper translates an opaque platform event into a typed payload.
type Mapper func(Event) (any, error)

// Callback is an opaque listener binding: a platform-event translator
// paired with the callback consuming the typed payload. Bindings are
// compared by presence only; their closures are never inspected.
type Callback struct {
	mapper Mapper
	fn     func(any)
}

// NewCallback builds a binding from a translator and a consumer.
// A nil mapper passes the platform event through untranslated.
func NewCallback(mapper Mapper, fn func(any)) *Callback {
	return &Callback{mapper: mapper, fn: fn}
}

// Emit translates raw and invokes the bound callback. A translation
// failure is returned to the caller; the callback is not invoked.
func (c *Callback) Emit(raw Event) error {
	if c == nil || c.fn == nil {
		return nil
	}
	payload := any(raw)
	if c.mapper != nil {
		var err error
		payload, err = c.mapper(raw)
		if err != nil {
			return err
		}
	}
	c.fn(payload)
	return nil
}

// Coordinate is the pointer position of a mouse event, in the
// coordinate spaces the platform reports.
type Coordinate struct {
	ClientX, ClientY     int
	MovementX, MovementY int
	OffsetX, OffsetY     int
	ScreenX, ScreenY     int
	X, Y                 int
}

// Modifier holds the modifier-key state at the time of an event.
type Modifier struct {
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// MouseButton identifies which button produced a mouse event.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// String returns the string representation of the MouseButton.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	case MouseWheelUp:
		return "WheelUp"
	case MouseWheelDown:
		return "WheelDown"
	default:
		return "Unknown"
	}
}

// MouseEvent is the typed payload for pointer interactions.
type MouseEvent struct {
	Type       string // "click", "mousedown", ...
	Coordinate Coordinate
	Modifier   Modifier
	Button     MouseButton
}

// KeyEvent is the typed payload for keyboard interactions.
type KeyEvent struct {
	Key      string
	Modifier Modifier
	Repeat   bool
	Location uint32
}

// InputEvent is the typed payload for value-bearing form events.
type InputEvent struct {
	Value string
}

// UnitEvent is the payload for events that carry no data, such as
// focus and blur.
type UnitEvent struct{}
