package protocol

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// ErrUnknownPatchOp reports a patch opcode the decoder does not know.
var ErrUnknownPatchOp = fmt.Errorf("protocol: unknown patch op")

// EncodePatches encodes a diff result for transmission.
//
// Wire format: varint patch count, then per patch the opcode byte, the
// target index, and the per-op payload. Listener patches carry names
// only; bindings never cross the wire.
func EncodePatches(e *Encoder, patches []vdom.Patch) error {
	e.WriteUvarint(uint64(len(patches)))
	for _, p := range patches {
		if err := encodePatch(e, p); err != nil {
			return err
		}
	}
	return nil
}

func encodePatch(e *Encoder, p vdom.Patch) error {
	e.WriteByte(byte(p.Op))
	e.WriteUvarint(uint64(p.Idx))

	switch p.Op {
	case vdom.PatchAppendChildren:
		e.WriteString(p.Tag)
		e.WriteUvarint(uint64(len(p.Children)))
		for _, child := range p.Children {
			if err := EncodeNode(e, child); err != nil {
				return err
			}
		}

	case vdom.PatchTruncateChildren:
		e.WriteString(p.Tag)
		e.WriteUvarint(uint64(p.KeepLen))

	case vdom.PatchReplace:
		e.WriteString(p.Tag)
		if err := EncodeNode(e, p.Node); err != nil {
			return err
		}

	case vdom.PatchAddAttributes:
		e.WriteString(p.Tag)
		e.WriteUvarint(uint64(len(p.Attrs)))
		for _, a := range p.Attrs {
			e.WriteString(a.Name)
			e.WriteString(a.Value)
		}

	case vdom.PatchRemoveAttributes, vdom.PatchRemoveEventListener:
		e.WriteString(p.Tag)
		e.WriteUvarint(uint64(len(p.Names)))
		for _, name := range p.Names {
			e.WriteString(name)
		}

	case vdom.PatchAddEventListener:
		e.WriteString(p.Tag)
		e.WriteUvarint(uint64(len(p.Attrs)))
		for _, a := range p.Attrs {
			e.WriteString(a.Name)
		}

	case vdom.PatchChangeText:
		e.WriteString(p.Text)

	default:
		return fmt.Errorf("%w: 0x%02x", ErrUnknownPatchOp, byte(p.Op))
	}
	return nil
}

// DecodePatches decodes a patch frame payload.
func DecodePatches(d *Decoder) ([]vdom.Patch, error) {
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	patches := make([]vdom.Patch, 0, count)
	for i := 0; i < count; i++ {
		p, err := decodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("protocol: patch %d: %w", i, err)
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func decodePatch(d *Decoder) (vdom.Patch, error) {
	var p vdom.Patch

	op, err := d.ReadByte()
	if err != nil {
		return p, err
	}
	p.Op = vdom.PatchOp(op)

	idx, err := d.ReadUvarint()
	if err != nil {
		return p, err
	}
	p.Idx = vdom.NodeIdx(idx)

	switch p.Op {
	case vdom.PatchAppendChildren:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		count, err := d.ReadCollectionCount()
		if err != nil {
			return p, err
		}
		p.Children = make([]*vdom.Node, 0, count)
		for i := 0; i < count; i++ {
			child, err := DecodeNode(d)
			if err != nil {
				return p, err
			}
			p.Children = append(p.Children, child)
		}

	case vdom.PatchTruncateChildren:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		keep, err := d.ReadUvarint()
		if err != nil {
			return p, err
		}
		if keep > MaxCollectionCount {
			return p, ErrCollectionTooLarge
		}
		p.KeepLen = int(keep)

	case vdom.PatchReplace:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		if p.Node, err = DecodeNode(d); err != nil {
			return p, err
		}

	case vdom.PatchAddAttributes:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		count, err := d.ReadCollectionCount()
		if err != nil {
			return p, err
		}
		p.Attrs = make([]vdom.Attr, 0, count)
		for i := 0; i < count; i++ {
			name, err := d.ReadString()
			if err != nil {
				return p, err
			}
			value, err := d.ReadString()
			if err != nil {
				return p, err
			}
			p.Attrs = append(p.Attrs, vdom.Attr{Name: name, Value: value})
		}

	case vdom.PatchRemoveAttributes, vdom.PatchRemoveEventListener:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		if p.Names, err = decodeNames(d); err != nil {
			return p, err
		}

	case vdom.PatchAddEventListener:
		if p.Tag, err = d.ReadString(); err != nil {
			return p, err
		}
		count, err := d.ReadCollectionCount()
		if err != nil {
			return p, err
		}
		p.Attrs = make([]vdom.Attr, 0, count)
		for i := 0; i < count; i++ {
			name, err := d.ReadString()
			if err != nil {
				return p, err
			}
			p.Attrs = append(p.Attrs, vdom.Attr{Name: name, Listener: vdom.NewCallback(nil, nil)})
		}

	case vdom.PatchChangeText:
		if p.Text, err = d.ReadString(); err != nil {
			return p, err
		}

	default:
		return p, fmt.Errorf("%w: 0x%02x", ErrUnknownPatchOp, op)
	}
	return p, nil
}

func decodeNames(d *Decoder) ([]string, error) {
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
