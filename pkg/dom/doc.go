// Package dom provides the reference live tree for Loom: a mutable
// in-memory realization of the most recently applied snapshot.
//
// Renderer implements the mutation primitives the patch applier
// consumes; Dispatch routes platform events into the listener
// bindings held by live nodes. RenderHTML serializes the tree for
// page output and diagnostics.
//
// The live tree assumes a single writer: one diff/apply cycle
// completes before the next begins, and event dispatch is not safe
// concurrently with an apply pass.
package dom
