// Package protocol implements the binary wire codec for Loom's
// server-driven UI sessions.
//
// Patch frames carry diff results from the server to the client; event
// frames carry platform events back. All variable-length data is
// varint length-prefixed, and the decoder enforces allocation,
// collection, and nesting-depth limits so a malicious peer cannot
// force oversized allocations or deep recursion.
//
// Listener bindings are process-local and never cross the wire; only
// listener names do, which is sufficient to route events back to the
// owning side.
package protocol
