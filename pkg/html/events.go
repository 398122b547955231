package html

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// eventTable maps event names to the translator producing their typed
// payload. Names absent from the table dispatch the platform event
// untranslated.
var eventTable = map[string]vdom.Mapper{
	"click":       mouseMapper,
	"dblclick":    mouseMapper,
	"mousedown":   mouseMapper,
	"mouseup":     mouseMapper,
	"mousemove":   mouseMapper,
	"mouseenter":  mouseMapper,
	"mouseleave":  mouseMapper,
	"contextmenu": mouseMapper,

	"keydown":  keyMapper,
	"keyup":    keyMapper,
	"keypress": keyMapper,

	"input":  inputMapper,
	"change": inputMapper,

	"submit": unitMapper,
	"focus":  unitMapper,
	"blur":   unitMapper,
	"reset":  unitMapper,
}

func mouseMapper(raw vdom.Event) (any, error) {
	switch e := raw.(type) {
	case vdom.MouseEvent:
		return e, nil
	case *vdom.MouseEvent:
		return *e, nil
	}
	return nil, fmt.Errorf("%w: %T is not a mouse event", vdom.ErrUnrecognizedEventPayload, raw)
}

func keyMapper(raw vdom.Event) (any, error) {
	switch e := raw.(type) {
	case vdom.KeyEvent:
		return e, nil
	case *vdom.KeyEvent:
		return *e, nil
	}
	return nil, fmt.Errorf("%w: %T is not a key event", vdom.ErrUnrecognizedEventPayload, raw)
}

func inputMapper(raw vdom.Event) (any, error) {
	switch e := raw.(type) {
	case vdom.InputEvent:
		return e, nil
	case *vdom.InputEvent:
		return *e, nil
	case string:
		// Shorthand: the committed value alone.
		return vdom.InputEvent{Value: e}, nil
	}
	return nil, fmt.Errorf("%w: %T is not an input event", vdom.ErrUnrecognizedEventPayload, raw)
}

func unitMapper(vdom.Event) (any, error) {
	return vdom.UnitEvent{}, nil
}

// On binds a listener for the named event. The payload handed to fn is
// the typed form from the event table, or the raw platform event for
// names the table does not know.
func On(name string, fn func(any)) vdom.Attr {
	return vdom.Attr{Name: name, Listener: vdom.NewCallback(eventTable[name], fn)}
}

// onTyped binds a listener whose consumer takes the typed payload the
// event table produces for name.
func onTyped[T any](name string, fn func(T)) vdom.Attr {
	return vdom.Attr{Name: name, Listener: vdom.NewCallback(eventTable[name], func(payload any) {
		fn(payload.(T))
	})}
}

// Mouse events

// OnClick handles click events.
func OnClick(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("click", fn) }

// OnDblClick handles double-click events.
func OnDblClick(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("dblclick", fn) }

// OnMouseDown handles mousedown events.
func OnMouseDown(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("mousedown", fn) }

// OnMouseUp handles mouseup events.
func OnMouseUp(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("mouseup", fn) }

// OnMouseMove handles mousemove events.
func OnMouseMove(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("mousemove", fn) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("mouseenter", fn) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("mouseleave", fn) }

// OnContextMenu handles contextmenu events.
func OnContextMenu(fn func(vdom.MouseEvent)) vdom.Attr { return onTyped("contextmenu", fn) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(fn func(vdom.KeyEvent)) vdom.Attr { return onTyped("keydown", fn) }

// OnKeyUp handles keyup events.
func OnKeyUp(fn func(vdom.KeyEvent)) vdom.Attr { return onTyped("keyup", fn) }

// OnKeyPress handles keypress events.
func OnKeyPress(fn func(vdom.KeyEvent)) vdom.Attr { return onTyped("keypress", fn) }

// Form events

// OnInput handles input events (fired when the value changes).
func OnInput(fn func(vdom.InputEvent)) vdom.Attr { return onTyped("input", fn) }

// OnChange handles change events (fired when the value is committed).
func OnChange(fn func(vdom.InputEvent)) vdom.Attr { return onTyped("change", fn) }

// OnSubmit handles form submit events.
func OnSubmit(fn func(vdom.UnitEvent)) vdom.Attr { return onTyped("submit", fn) }

// OnFocus handles focus events.
func OnFocus(fn func(vdom.UnitEvent)) vdom.Attr { return onTyped("focus", fn) }

// OnBlur handles blur events.
func OnBlur(fn func(vdom.UnitEvent)) vdom.Attr { return onTyped("blur", fn) }

// OnReset handles form reset events.
func OnReset(fn func(vdom.UnitEvent)) vdom.Attr { return onTyped("reset", fn) }
