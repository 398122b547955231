package vdom

import (
	"errors"
	"fmt"
)

// ErrStructuralMismatch reports that the live tree no longer matches
// the indexing a patch list assumes: a target index is missing or a
// visited node's tag disagrees with the tag the differ recorded.
// This is an integration error; the apply pass aborts rather than
// continue against a corrupted numbering. The live tree is left
// partially patched and the cycle should be treated as fatal.
var ErrStructuralMismatch = errors.New("vdom: live tree does not match patch indexing")

// LiveNode is the applier's read-only view of one node in the
// renderer's mutable tree. Its traversal must agree with the snapshot
// indexing: same pre-order, every node visited, text leaves included.
type LiveNode interface {
	Kind() NodeKind
	Tag() string
	ChildCount() int
	Child(i int) LiveNode
}

// Renderer owns the live tree and performs the primitive mutations
// the applier needs. Each method receives the live handle of the node
// being mutated; node-typed arguments are snapshot fragments the
// renderer realizes itself.
type Renderer interface {
	CreateNode(n *Node) LiveNode
	AppendChild(parent LiveNode, n *Node) error
	ReplaceNode(target LiveNode, n *Node) error
	RemoveChildrenAfter(target LiveNode, keep int) error
	SetAttribute(target LiveNode, name, value string) error
	RemoveAttribute(target LiveNode, name string) error
	AddListener(target LiveNode, name string, binding *Callback) error
	RemoveListener(target LiveNode, name string) error
	SetText(target LiveNode, content string) error
}

// Apply performs an ordered patch list against the live tree rooted
// at root, using the renderer's primitives. Target handles are
// collected in one indexing pass before any mutation, so structural
// patches cannot skew later lookups; the patches themselves are then
// applied strictly in their original order.
//
// Apply is single-writer: one apply pass must complete before the
// next diff/apply cycle begins. A returned error leaves the tree
// partially patched; there is no rollback.
func Apply(r Renderer, root LiveNode, patches []Patch) error {
	if len(patches) == 0 {
		return nil
	}

	wanted := make(map[NodeIdx]struct{}, len(patches))
	for i := range patches {
		wanted[patches[i].TargetIndex()] = struct{}{}
	}
	targets := make(map[NodeIdx]LiveNode, len(wanted))
	collect(root, &cursor{}, wanted, targets)

	for i := range patches {
		if err := applyOne(r, &patches[i], targets); err != nil {
			return err
		}
	}
	return nil
}

// NodeAt returns the live node at idx in the applier's traversal
// order, or nil when the tree has fewer nodes. Useful for event
// routing and tests.
func NodeAt(root LiveNode, idx NodeIdx) LiveNode {
	if root == nil || idx < 0 {
		return nil
	}
	targets := make(map[NodeIdx]LiveNode, 1)
	collect(root, &cursor{}, map[NodeIdx]struct{}{idx: {}}, targets)
	return targets[idx]
}

// collect re-runs the indexer traversal over the live tree, recording
// handles for every wanted index.
func collect(n LiveNode, cur *cursor, wanted map[NodeIdx]struct{}, out map[NodeIdx]LiveNode) {
	if n == nil {
		return
	}
	idx := cur.take()
	if _, ok := wanted[idx]; ok {
		out[idx] = n
	}
	for i := 0; i < n.ChildCount(); i++ {
		collect(n.Child(i), cur, wanted, out)
	}
}

func applyOne(r Renderer, p *Patch, targets map[NodeIdx]LiveNode) error {
	target, ok := targets[p.Idx]
	if !ok {
		return fmt.Errorf("%w: no live node at index %d for %s", ErrStructuralMismatch, p.Idx, p.Op)
	}
	if err := checkTarget(p, target); err != nil {
		return err
	}

	switch p.Op {
	case PatchAppendChildren:
		for _, child := range p.Children {
			if err := r.AppendChild(target, child); err != nil {
				return err
			}
		}
	case PatchTruncateChildren:
		return r.RemoveChildrenAfter(target, p.KeepLen)
	case PatchReplace:
		return r.ReplaceNode(target, p.Node)
	case PatchAddAttributes:
		for _, a := range p.Attrs {
			if err := r.SetAttribute(target, a.Name, a.Value); err != nil {
				return err
			}
		}
	case PatchRemoveAttributes:
		for _, name := range p.Names {
			if err := r.RemoveAttribute(target, name); err != nil {
				return err
			}
		}
	case PatchAddEventListener:
		for _, a := range p.Attrs {
			if err := r.AddListener(target, a.Name, a.Listener); err != nil {
				return err
			}
		}
	case PatchRemoveEventListener:
		for _, name := range p.Names {
			if err := r.RemoveListener(target, name); err != nil {
				return err
			}
		}
	case PatchChangeText:
		return r.SetText(target, p.Text)
	default:
		return fmt.Errorf("vdom: unknown patch op 0x%02x at index %d", uint8(p.Op), p.Idx)
	}
	return nil
}

// checkTarget verifies the live node still looks like the node the
// differ addressed. Element patches carry the old tag; text patches
// (and replacements of text leaves) carry none.
func checkTarget(p *Patch, target LiveNode) error {
	if p.Op == PatchChangeText {
		if target.Kind() != KindText {
			return fmt.Errorf("%w: index %d is %s, want Text", ErrStructuralMismatch, p.Idx, target.Kind())
		}
		return nil
	}
	if p.Tag == "" {
		// Replacing a text leaf; any other op always records a tag.
		if p.Op == PatchReplace && target.Kind() != KindText {
			return fmt.Errorf("%w: index %d is %s, want Text", ErrStructuralMismatch, p.Idx, target.Kind())
		}
		return nil
	}
	if target.Kind() != KindElement || target.Tag() != p.Tag {
		return fmt.Errorf("%w: index %d is <%s>, want <%s>", ErrStructuralMismatch, p.Idx, target.Tag(), p.Tag)
	}
	return nil
}
