package dom

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// Renderer realizes snapshot fragments as live dom nodes and performs
// the primitive mutations the patch applier needs. It is stateless;
// all state lives in the tree itself.
type Renderer struct{}

var _ vdom.Renderer = Renderer{}

// asNode unwraps a live handle produced by this renderer.
func asNode(h vdom.LiveNode) (*Node, error) {
	n, ok := h.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("dom: foreign live handle %T", h)
	}
	return n, nil
}

// CreateNode materializes a snapshot subtree as a fresh live subtree.
func (Renderer) CreateNode(n *vdom.Node) vdom.LiveNode {
	return build(n)
}

func build(n *vdom.Node) *Node {
	if n.Kind == vdom.KindText {
		return &Node{kind: vdom.KindText, text: n.Text}
	}
	out := &Node{
		kind:      vdom.KindElement,
		tag:       n.Tag,
		attrs:     make(map[string]string),
		listeners: make(map[string]*vdom.Callback),
	}
	for _, a := range vdom.MergeAttrs(n.Attrs) {
		if a.IsListener() {
			out.listeners[a.Name] = a.Listener
		} else {
			out.attrs[a.Name] = a.Value
		}
	}
	out.children = make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		out.children = append(out.children, build(child))
	}
	return out
}

// AppendChild realizes the snapshot child and appends it.
func (Renderer) AppendChild(parent vdom.LiveNode, child *vdom.Node) error {
	p, err := asNode(parent)
	if err != nil {
		return err
	}
	if p.kind != vdom.KindElement {
		return fmt.Errorf("dom: cannot append child to %s node", p.kind)
	}
	p.children = append(p.children, build(child))
	return nil
}

// ReplaceNode swaps the target's entire subtree for the realized
// replacement. The swap is performed in place so existing handles to
// the target (including the tree root) stay valid.
func (Renderer) ReplaceNode(target vdom.LiveNode, replacement *vdom.Node) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	*t = *build(replacement)
	return nil
}

// RemoveChildrenAfter drops every child past the first keep.
func (Renderer) RemoveChildrenAfter(target vdom.LiveNode, keep int) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	if keep < 0 {
		keep = 0
	}
	if keep < len(t.children) {
		t.children = t.children[:keep]
	}
	return nil
}

// SetAttribute sets or replaces a plain attribute.
func (Renderer) SetAttribute(target vdom.LiveNode, name, value string) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	if t.attrs == nil {
		t.attrs = make(map[string]string)
	}
	t.attrs[name] = value
	return nil
}

// RemoveAttribute removes a plain attribute. Removing an absent name
// is a no-op.
func (Renderer) RemoveAttribute(target vdom.LiveNode, name string) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	delete(t.attrs, name)
	return nil
}

// AddListener binds a listener for the named event, replacing any
// previous binding under that name.
func (Renderer) AddListener(target vdom.LiveNode, name string, binding *vdom.Callback) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	if t.listeners == nil {
		t.listeners = make(map[string]*vdom.Callback)
	}
	t.listeners[name] = binding
	return nil
}

// RemoveListener drops the binding for the named event.
func (Renderer) RemoveListener(target vdom.LiveNode, name string) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	delete(t.listeners, name)
	return nil
}

// SetText updates the content of a text leaf.
func (Renderer) SetText(target vdom.LiveNode, content string) error {
	t, err := asNode(target)
	if err != nil {
		return err
	}
	if t.kind != vdom.KindText {
		return fmt.Errorf("dom: SetText on %s node", t.kind)
	}
	t.text = content
	return nil
}
