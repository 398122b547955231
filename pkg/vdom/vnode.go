package vdom

import "fmt"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <button>, etc.
	KindText                    // Plain text leaf
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is one node of an immutable tree snapshot: an element with an
// ordered attribute sequence and ordered children, or a text leaf.
// Snapshots are built once, diffed, and discarded; the differ never
// mutates them.
type Node struct {
	Kind     NodeKind
	Tag      string  // Element tag name (e.g., "div")
	Attrs    []Attr  // Ordered attributes, may contain duplicates until merged
	Children []*Node // Child nodes, order is semantically meaningful
	Text     string  // For KindText
}

// Attr is a single named attribute. A non-nil Listener marks the
// listener variant; Value is meaningful only for the plain variant.
// The two variants are distinct on purpose: listener bindings are
// opaque and are never compared by value.
type Attr struct {
	Name     string
	Value    string
	Listener *Callback
}

// IsListener reports whether this attribute carries an event binding.
func (a Attr) IsListener() bool {
	return a.Listener != nil
}

// Elem creates an element node.
func Elem(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Text creates a text leaf.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a formatted text leaf.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// MergeAttrs collapses duplicate attribute names into one logical
// attribute so names are unique within a node. The last occurrence
// wins; the merged attribute keeps the position of the first.
func MergeAttrs(attrs []Attr) []Attr {
	if len(attrs) < 2 {
		return attrs
	}
	merged := make([]Attr, 0, len(attrs))
	pos := make(map[string]int, len(attrs))
	for _, a := range attrs {
		if i, seen := pos[a.Name]; seen {
			merged[i] = a
			continue
		}
		pos[a.Name] = len(merged)
		merged = append(merged, a)
	}
	return merged
}

// Equal reports whether two snapshots are observably equal: same
// kinds, tags, text, plain attribute values, listener presence by
// name, and children, recursively. Listener bindings are opaque, so
// two listeners with the same name always compare equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if !attrsEqual(MergeAttrs(a.Attrs), MergeAttrs(b.Attrs)) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	byName := make(map[string]Attr, len(a))
	for _, attr := range a {
		byName[attr.Name] = attr
	}
	for _, attr := range b {
		other, ok := byName[attr.Name]
		if !ok || other.IsListener() != attr.IsListener() {
			return false
		}
		if !attr.IsListener() && other.Value != attr.Value {
			return false
		}
	}
	return true
}
