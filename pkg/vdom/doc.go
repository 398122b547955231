// Package vdom is the diff/patch engine at the heart of Loom.
//
// Two immutable tree snapshots are compared by Diff, which emits a
// flat, ordered list of Patch operations; Apply replays those
// operations against a live mutable tree through a Renderer. Nodes
// are addressed by NodeIdx, their depth-first pre-order position,
// computed identically on both sides: the differ counts old-tree
// nodes while it recurses, and the applier re-runs the same traversal
// over the live tree before mutating anything. As long as patches are
// applied in the order they were generated, the two numberings agree
// and unchanged subtrees keep their identity (focus, scroll position
// and external handles survive a render cycle).
//
// # Core Types
//
// Node is the snapshot node: an element with ordered attributes and
// children, or a text leaf. Attr carries either a plain value or an
// opaque listener binding (Callback); the two variants are distinct
// from the start, so diffing never inspects closures.
//
// # Diffing
//
// Diff(old, next) is pure and total over well-formed trees. Children
// reconcile positionally; a kind or tag mismatch replaces the whole
// subtree with a single patch and prunes recursion beneath it.
//
// # Applying
//
// Apply(renderer, root, patches) mutates the live tree in place.
// Diffing and applying are synchronous and single-writer: one cycle
// finishes before the next begins.
package vdom
