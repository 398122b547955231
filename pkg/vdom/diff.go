package vdom

// Diff compares two tree snapshots and returns the ordered patches
// that transform a live tree shaped like old into new. It is a pure
// function: neither input is mutated, and diffing two equal trees
// yields an empty patch list.
//
// Patches are emitted in depth-first order, parent before children,
// and must be applied in that same order: Replace, AppendChildren and
// TruncateChildren change the shape of later traversal, so reordering
// invalidates index lookups.
func Diff(old, next *Node) []Patch {
	if old == nil || next == nil {
		return nil
	}
	var patches []Patch
	cur := &cursor{}
	diffNode(old, next, cur, &patches)
	return patches
}

// diffNode compares two nodes known to occupy the same index and
// appends patches. The cursor tracks the old tree's depth-first
// numbering across the whole recursion.
func diffNode(old, next *Node, cur *cursor, patches *[]Patch) {
	idx := cur.take()

	// A kind or tag mismatch replaces the whole subtree. Recursion
	// stops here, but the cursor still advances past the old
	// descendants so sibling indices stay aligned.
	if old.Kind != next.Kind || old.Tag != next.Tag {
		*patches = append(*patches, Patch{Op: PatchReplace, Tag: old.Tag, Idx: idx, Node: next})
		for _, child := range old.Children {
			cur.skip(child)
		}
		return
	}

	if old.Kind == KindText {
		if old.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchChangeText, Idx: idx, Text: next.Text})
		}
		return
	}

	diffAttrs(old, next, idx, patches)

	// Positional (non-keyed) reconciliation over the shared prefix.
	// Reordering shows up as replace/attribute noise; that is the
	// accepted trade-off, not a defect.
	shared := len(old.Children)
	if len(next.Children) < shared {
		shared = len(next.Children)
	}
	for i := 0; i < shared; i++ {
		diffNode(old.Children[i], next.Children[i], cur, patches)
	}
	// Old children past the shared prefix still occupy indices.
	for _, child := range old.Children[shared:] {
		cur.skip(child)
	}

	switch {
	case len(next.Children) > len(old.Children):
		*patches = append(*patches, Patch{
			Op:       PatchAppendChildren,
			Tag:      old.Tag,
			Idx:      idx,
			Children: next.Children[shared:],
		})
	case len(next.Children) < len(old.Children):
		*patches = append(*patches, Patch{
			Op:      PatchTruncateChildren,
			Tag:     old.Tag,
			Idx:     idx,
			KeepLen: len(next.Children),
		})
	}
}

// diffAttrs compares the merged attribute collections of two elements
// with matching tags and emits up to four patches, each covering all
// changed names of its category. Empty sets emit nothing.
//
// Plain attributes compare by value and the new value wins whole.
// Listener bindings are opaque closures: two listeners with the same
// name are indistinguishable, so a listener patch appears only when a
// name gains or loses a binding (or switches variant).
func diffAttrs(old, next *Node, idx NodeIdx, patches *[]Patch) {
	oldAttrs := MergeAttrs(old.Attrs)
	nextAttrs := MergeAttrs(next.Attrs)

	oldByName := make(map[string]Attr, len(oldAttrs))
	for _, a := range oldAttrs {
		oldByName[a.Name] = a
	}
	nextByName := make(map[string]Attr, len(nextAttrs))
	for _, a := range nextAttrs {
		nextByName[a.Name] = a
	}

	var addAttrs, addListeners []Attr
	for _, a := range nextAttrs {
		prev, existed := oldByName[a.Name]
		if a.IsListener() {
			if !existed || !prev.IsListener() {
				addListeners = append(addListeners, a)
			}
			continue
		}
		if !existed || prev.IsListener() || prev.Value != a.Value {
			addAttrs = append(addAttrs, a)
		}
	}

	var removeAttrs, removeListeners []string
	for _, a := range oldAttrs {
		cur, exists := nextByName[a.Name]
		if exists && cur.IsListener() == a.IsListener() {
			continue
		}
		if a.IsListener() {
			removeListeners = append(removeListeners, a.Name)
		} else {
			removeAttrs = append(removeAttrs, a.Name)
		}
	}

	if len(addAttrs) > 0 {
		*patches = append(*patches, Patch{Op: PatchAddAttributes, Tag: old.Tag, Idx: idx, Attrs: addAttrs})
	}
	if len(removeAttrs) > 0 {
		*patches = append(*patches, Patch{Op: PatchRemoveAttributes, Tag: old.Tag, Idx: idx, Names: removeAttrs})
	}
	if len(addListeners) > 0 {
		*patches = append(*patches, Patch{Op: PatchAddEventListener, Tag: old.Tag, Idx: idx, Attrs: addListeners})
	}
	if len(removeListeners) > 0 {
		*patches = append(*patches, Patch{Op: PatchRemoveEventListener, Tag: old.Tag, Idx: idx, Names: removeListeners})
	}
}
