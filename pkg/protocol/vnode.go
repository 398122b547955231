package protocol

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// MaxNodeDepth limits the nesting depth of encoded snapshot trees.
// This prevents stack overflow from maliciously deep trees.
const MaxNodeDepth = 256

// Node kind markers on the wire.
const (
	wireElement byte = 0x00
	wireText    byte = 0x01
)

// Attribute kind markers on the wire.
const (
	wireAttrPlain    byte = 0x00
	wireAttrListener byte = 0x01
)

// EncodeNode encodes a snapshot subtree.
//
// Listener bindings are process-local closures and have no wire form;
// only the listener name crosses the boundary, which is all the remote
// side needs to route events back.
//
// Wire format:
//
//	element: 0x00, tag string, attr count, attrs, child count, children
//	text:    0x01, content string
//	attr:    kind byte, name string, value string (plain only)
func EncodeNode(e *Encoder, n *vdom.Node) error {
	return encodeNode(e, n, 0)
}

func encodeNode(e *Encoder, n *vdom.Node, depth int) error {
	if depth > MaxNodeDepth {
		return ErrMaxDepthExceeded
	}
	if n == nil {
		return fmt.Errorf("protocol: cannot encode nil node")
	}

	if n.Kind == vdom.KindText {
		e.WriteByte(wireText)
		e.WriteString(n.Text)
		return nil
	}

	e.WriteByte(wireElement)
	e.WriteString(n.Tag)

	e.WriteUvarint(uint64(len(n.Attrs)))
	for _, a := range n.Attrs {
		if a.IsListener() {
			e.WriteByte(wireAttrListener)
			e.WriteString(a.Name)
		} else {
			e.WriteByte(wireAttrPlain)
			e.WriteString(a.Name)
			e.WriteString(a.Value)
		}
	}

	e.WriteUvarint(uint64(len(n.Children)))
	for _, child := range n.Children {
		if err := encodeNode(e, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// DecodeNode decodes a snapshot subtree. Listener attributes come back
// with an inert placeholder binding; presence is preserved, behavior
// stays with the producing side.
func DecodeNode(d *Decoder) (*vdom.Node, error) {
	return decodeNode(d, 0)
}

func decodeNode(d *Decoder, depth int) (*vdom.Node, error) {
	if depth > MaxNodeDepth {
		return nil, ErrMaxDepthExceeded
	}

	kind, err := d.ReadByte()
	if err != nil {
		return nil, err
	}

	switch kind {
	case wireText:
		text, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		return vdom.Text(text), nil

	case wireElement:
		tag, err := d.ReadString()
		if err != nil {
			return nil, err
		}

		attrCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		attrs := make([]vdom.Attr, 0, attrCount)
		for i := 0; i < attrCount; i++ {
			a, err := decodeAttr(d)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a)
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return nil, err
		}
		children := make([]*vdom.Node, 0, childCount)
		for i := 0; i < childCount; i++ {
			child, err := decodeNode(d, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		return vdom.Elem(tag, attrs, children...), nil

	default:
		return nil, fmt.Errorf("protocol: unknown node kind 0x%02x", kind)
	}
}

func decodeAttr(d *Decoder) (vdom.Attr, error) {
	kind, err := d.ReadByte()
	if err != nil {
		return vdom.Attr{}, err
	}
	name, err := d.ReadString()
	if err != nil {
		return vdom.Attr{}, err
	}

	switch kind {
	case wireAttrPlain:
		value, err := d.ReadString()
		if err != nil {
			return vdom.Attr{}, err
		}
		return vdom.Attr{Name: name, Value: value}, nil

	case wireAttrListener:
		return vdom.Attr{Name: name, Listener: vdom.NewCallback(nil, nil)}, nil

	default:
		return vdom.Attr{}, fmt.Errorf("protocol: unknown attribute kind 0x%02x", kind)
	}
}
