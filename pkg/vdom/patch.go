package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchAppendChildren      PatchOp = 0x01 // Append surplus new children to a parent
	PatchTruncateChildren    PatchOp = 0x02 // Remove all children past a kept count
	PatchReplace             PatchOp = 0x03 // Replace a node and its whole subtree
	PatchAddAttributes       PatchOp = 0x04 // Set added/changed plain attributes
	PatchRemoveAttributes    PatchOp = 0x05 // Remove plain attributes by name
	PatchAddEventListener    PatchOp = 0x06 // Bind listener attributes
	PatchRemoveEventListener PatchOp = 0x07 // Unbind listener attributes by name
	PatchChangeText          PatchOp = 0x08 // Update the content of a text leaf
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchAppendChildren:
		return "AppendChildren"
	case PatchTruncateChildren:
		return "TruncateChildren"
	case PatchReplace:
		return "Replace"
	case PatchAddAttributes:
		return "AddAttributes"
	case PatchRemoveAttributes:
		return "RemoveAttributes"
	case PatchAddEventListener:
		return "AddEventListener"
	case PatchRemoveEventListener:
		return "RemoveEventListener"
	case PatchChangeText:
		return "ChangeText"
	default:
		return "Unknown"
	}
}

// Patch is one mutation instruction addressed to the node at Idx in
// the depth-first indexing that both the differ and the applier
// compute. Tag records the target's element tag so the applier can
// detect a live tree that has drifted from that indexing.
//
// Node payloads (Node, Children) are pointers into the new snapshot,
// not copies, so the new tree must stay alive until the patch list
// has been applied.
type Patch struct {
	Op       PatchOp
	Tag      string   // Target's element tag; empty for text targets
	Idx      NodeIdx  // Target's depth-first index
	Children []*Node  // AppendChildren: surplus new children
	KeepLen  int      // TruncateChildren: number of children to keep
	Node     *Node    // Replace: the replacement subtree
	Attrs    []Attr   // AddAttributes / AddEventListener
	Names    []string // RemoveAttributes / RemoveEventListener
	Text     string   // ChangeText: the new content
}

// TargetIndex returns the depth-first index of the node this patch
// applies to.
func (p Patch) TargetIndex() NodeIdx {
	return p.Idx
}
