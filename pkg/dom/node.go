package dom

import (
	"github.com/loom-ui/loom/pkg/vdom"
)

// Node is one mutable node of the live tree. The live tree outlives
// any single diff/patch cycle; the applier borrows it only while
// replaying one patch list. Node implements vdom.LiveNode.
type Node struct {
	kind      vdom.NodeKind
	tag       string
	text      string
	attrs     map[string]string
	listeners map[string]*vdom.Callback
	children  []*Node
}

// Kind returns the node's variant.
func (n *Node) Kind() vdom.NodeKind { return n.kind }

// Tag returns the element tag name, or "" for text leaves.
func (n *Node) Tag() string { return n.tag }

// Text returns the content of a text leaf.
func (n *Node) Text() string { return n.text }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child. The traversal order ChildCount/Child
// expose is exactly the snapshot child order, which keeps the live
// indexing aligned with the differ's.
func (n *Node) Child(i int) vdom.LiveNode { return n.children[i] }

// Attr returns the value of a plain attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasListener reports whether a listener is bound for the named event.
func (n *Node) HasListener(name string) bool {
	return n.listeners[name] != nil
}

// Matches reports whether the live node is observably equal to a
// snapshot: same kind, tag, text, plain attribute values, listener
// presence by name, and children, recursively.
func (n *Node) Matches(snap *vdom.Node) bool {
	if n == nil || snap == nil {
		return n == nil && snap == nil
	}
	if n.kind != snap.Kind || n.tag != snap.Tag || n.text != snap.Text {
		return false
	}

	var plain, bound int
	for _, a := range vdom.MergeAttrs(snap.Attrs) {
		if a.IsListener() {
			if !n.HasListener(a.Name) {
				return false
			}
			bound++
			continue
		}
		if v, ok := n.attrs[a.Name]; !ok || v != a.Value {
			return false
		}
		plain++
	}
	if len(n.attrs) != plain || len(n.listeners) != bound {
		return false
	}

	if len(n.children) != len(snap.Children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Matches(snap.Children[i]) {
			return false
		}
	}
	return true
}
