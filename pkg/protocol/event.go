package protocol

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// EventMessage is a platform event routed from the remote side to the
// listener bound at Target. Payload is one of the typed event payloads
// or nil for payload-free events.
type EventMessage struct {
	Target  vdom.NodeIdx
	Name    string
	Payload any
}

// Payload kind markers on the wire.
const (
	wirePayloadUnit  byte = 0x00
	wirePayloadMouse byte = 0x01
	wirePayloadKey   byte = 0x02
	wirePayloadInput byte = 0x03
)

// ErrUnsupportedPayload reports an event payload type with no wire form.
var ErrUnsupportedPayload = fmt.Errorf("protocol: unsupported event payload")

// Modifier flag bits.
const (
	modAlt byte = 1 << iota
	modCtrl
	modMeta
	modShift
)

// EncodeEvent encodes an event message.
//
// Wire format: target index, event name, payload kind byte, payload.
func EncodeEvent(e *Encoder, msg EventMessage) error {
	e.WriteUvarint(uint64(msg.Target))
	e.WriteString(msg.Name)

	switch p := msg.Payload.(type) {
	case nil, vdom.UnitEvent:
		e.WriteByte(wirePayloadUnit)

	case vdom.MouseEvent:
		e.WriteByte(wirePayloadMouse)
		e.WriteString(p.Type)
		encodeCoordinate(e, p.Coordinate)
		e.WriteByte(modifierBits(p.Modifier))
		e.WriteByte(byte(p.Button))

	case vdom.KeyEvent:
		e.WriteByte(wirePayloadKey)
		e.WriteString(p.Key)
		e.WriteByte(modifierBits(p.Modifier))
		e.WriteBool(p.Repeat)
		e.WriteUvarint(uint64(p.Location))

	case vdom.InputEvent:
		e.WriteByte(wirePayloadInput)
		e.WriteString(p.Value)

	case string:
		// Shorthand for a committed input value.
		e.WriteByte(wirePayloadInput)
		e.WriteString(p)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedPayload, msg.Payload)
	}
	return nil
}

// DecodeEvent decodes an event message.
func DecodeEvent(d *Decoder) (EventMessage, error) {
	var msg EventMessage

	idx, err := d.ReadUvarint()
	if err != nil {
		return msg, err
	}
	msg.Target = vdom.NodeIdx(idx)

	if msg.Name, err = d.ReadString(); err != nil {
		return msg, err
	}

	kind, err := d.ReadByte()
	if err != nil {
		return msg, err
	}

	switch kind {
	case wirePayloadUnit:
		msg.Payload = vdom.UnitEvent{}

	case wirePayloadMouse:
		var ev vdom.MouseEvent
		if ev.Type, err = d.ReadString(); err != nil {
			return msg, err
		}
		if ev.Coordinate, err = decodeCoordinate(d); err != nil {
			return msg, err
		}
		bits, err := d.ReadByte()
		if err != nil {
			return msg, err
		}
		ev.Modifier = modifierFromBits(bits)
		button, err := d.ReadByte()
		if err != nil {
			return msg, err
		}
		ev.Button = vdom.MouseButton(button)
		msg.Payload = ev

	case wirePayloadKey:
		var ev vdom.KeyEvent
		if ev.Key, err = d.ReadString(); err != nil {
			return msg, err
		}
		bits, err := d.ReadByte()
		if err != nil {
			return msg, err
		}
		ev.Modifier = modifierFromBits(bits)
		if ev.Repeat, err = d.ReadBool(); err != nil {
			return msg, err
		}
		loc, err := d.ReadUvarint()
		if err != nil {
			return msg, err
		}
		ev.Location = uint32(loc)
		msg.Payload = ev

	case wirePayloadInput:
		var ev vdom.InputEvent
		if ev.Value, err = d.ReadString(); err != nil {
			return msg, err
		}
		msg.Payload = ev

	default:
		return msg, fmt.Errorf("%w: kind 0x%02x", ErrUnsupportedPayload, kind)
	}
	return msg, nil
}

func encodeCoordinate(e *Encoder, c vdom.Coordinate) {
	for _, v := range [...]int{
		c.ClientX, c.ClientY,
		c.MovementX, c.MovementY,
		c.OffsetX, c.OffsetY,
		c.ScreenX, c.ScreenY,
		c.X, c.Y,
	} {
		e.WriteSvarint(int64(v))
	}
}

func decodeCoordinate(d *Decoder) (vdom.Coordinate, error) {
	var c vdom.Coordinate
	for _, field := range [...]*int{
		&c.ClientX, &c.ClientY,
		&c.MovementX, &c.MovementY,
		&c.OffsetX, &c.OffsetY,
		&c.ScreenX, &c.ScreenY,
		&c.X, &c.Y,
	} {
		v, err := d.ReadSvarint()
		if err != nil {
			return c, err
		}
		*field = int(v)
	}
	return c, nil
}

func modifierBits(m vdom.Modifier) byte {
	var bits byte
	if m.Alt {
		bits |= modAlt
	}
	if m.Ctrl {
		bits |= modCtrl
	}
	if m.Meta {
		bits |= modMeta
	}
	if m.Shift {
		bits |= modShift
	}
	return bits
}

func modifierFromBits(bits byte) vdom.Modifier {
	return vdom.Modifier{
		Alt:   bits&modAlt != 0,
		Ctrl:  bits&modCtrl != 0,
		Meta:  bits&modMeta != 0,
		Shift: bits&modShift != 0,
	}
}
