package vdom

import "testing"

func attr(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

func listener(name string) Attr {
	return Attr{Name: name, Listener: NewCallback(nil, func(any) {})}
}

func TestDiffNilTrees(t *testing.T) {
	if patches := Diff(nil, nil); len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffSameTree(t *testing.T) {
	build := func() *Node {
		return Elem("div", []Attr{attr("class", "container"), listener("click")},
			Elem("h1", nil, Text("Title")),
			Elem("p", nil, Text("Content")),
			Elem("button", []Attr{listener("click")}, Text("Click")),
		)
	}

	patches := Diff(build(), build())

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches for equal trees, got %d: %v", len(patches), patches)
	}
}

func TestDiffTextChangeScenario(t *testing.T) {
	old := Elem("div", nil, Text("hi"))
	next := Elem("div", nil, Text("bye"))

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchChangeText {
		t.Errorf("Op = %v, want ChangeText", patches[0].Op)
	}
	if patches[0].TargetIndex() != 1 {
		t.Errorf("TargetIndex = %d, want 1", patches[0].TargetIndex())
	}
	if patches[0].Text != "bye" {
		t.Errorf("Text = %q, want %q", patches[0].Text, "bye")
	}
}

func TestDiffTextUnchanged(t *testing.T) {
	patches := Diff(Text("hi"), Text("hi"))

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches for unchanged text, got %d", len(patches))
	}
}

func TestDiffTagChangeReplacesAndPrunes(t *testing.T) {
	old := Elem("div", []Attr{attr("class", "a")},
		Elem("ul", nil,
			Elem("li", nil, Text("one")),
			Elem("li", nil, Text("two")),
		),
	)
	next := Elem("span", []Attr{attr("id", "b")},
		Text("completely different"),
	)

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchReplace {
		t.Errorf("Op = %v, want Replace", p.Op)
	}
	if p.TargetIndex() != 0 {
		t.Errorf("TargetIndex = %d, want 0", p.TargetIndex())
	}
	if p.Tag != "div" {
		t.Errorf("Tag = %q, want div", p.Tag)
	}
	if p.Node != next {
		t.Error("Replace payload should share the new tree, not copy it")
	}
}

func TestDiffKindChangeReplaces(t *testing.T) {
	old := Elem("div", nil, Text("hi"))
	next := Elem("div", nil, Elem("span", nil))

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplace {
		t.Errorf("Op = %v, want Replace", patches[0].Op)
	}
	if patches[0].TargetIndex() != 1 {
		t.Errorf("TargetIndex = %d, want 1", patches[0].TargetIndex())
	}
}

func TestDiffAttributeMinimality(t *testing.T) {
	old := Elem("div", []Attr{attr("class", "old"), attr("id", "same")},
		Elem("p", nil, Text("unchanged")),
	)
	next := Elem("div", []Attr{attr("class", "new"), attr("id", "same")},
		Elem("p", nil, Text("unchanged")),
	)

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchAddAttributes {
		t.Errorf("Op = %v, want AddAttributes", p.Op)
	}
	if len(p.Attrs) != 1 || p.Attrs[0].Name != "class" || p.Attrs[0].Value != "new" {
		t.Errorf("Attrs = %v, want [class=new]", p.Attrs)
	}
}

func TestDiffAttributeRemoved(t *testing.T) {
	old := Elem("div", []Attr{attr("class", "x"), attr("title", "y")})
	next := Elem("div", nil)

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchRemoveAttributes {
		t.Errorf("Op = %v, want RemoveAttributes", p.Op)
	}
	if len(p.Names) != 2 || p.Names[0] != "class" || p.Names[1] != "title" {
		t.Errorf("Names = %v, want [class title]", p.Names)
	}
}

func TestDiffAttributeAddAndRemoveMerged(t *testing.T) {
	old := Elem("div", []Attr{attr("class", "old"), attr("id", "gone")})
	next := Elem("div", []Attr{attr("class", "new"), attr("title", "added")})

	patches := Diff(old, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchAddAttributes {
		t.Errorf("patches[0].Op = %v, want AddAttributes", patches[0].Op)
	}
	if len(patches[0].Attrs) != 2 {
		t.Errorf("AddAttributes should cover both changed names, got %v", patches[0].Attrs)
	}
	if patches[1].Op != PatchRemoveAttributes {
		t.Errorf("patches[1].Op = %v, want RemoveAttributes", patches[1].Op)
	}
	if len(patches[1].Names) != 1 || patches[1].Names[0] != "id" {
		t.Errorf("Names = %v, want [id]", patches[1].Names)
	}
}

func TestDiffListenerAdded(t *testing.T) {
	old := Elem("button", nil, Text("Click"))
	next := Elem("button", []Attr{listener("click")}, Text("Click"))

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchAddEventListener {
		t.Errorf("Op = %v, want AddEventListener", p.Op)
	}
	if len(p.Attrs) != 1 || p.Attrs[0].Name != "click" || !p.Attrs[0].IsListener() {
		t.Errorf("Attrs = %v, want one click listener", p.Attrs)
	}
}

func TestDiffListenerRemoved(t *testing.T) {
	old := Elem("button", []Attr{listener("click")}, Text("Click"))
	next := Elem("button", nil, Text("Click"))

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveEventListener {
		t.Errorf("Op = %v, want RemoveEventListener", patches[0].Op)
	}
	if len(patches[0].Names) != 1 || patches[0].Names[0] != "click" {
		t.Errorf("Names = %v, want [click]", patches[0].Names)
	}
}

func TestDiffListenerSameNameDifferentClosure(t *testing.T) {
	// Bindings are opaque; a listener present on both sides under the
	// same name produces no patch even though the closures differ.
	old := Elem("button", []Attr{listener("click")})
	next := Elem("button", []Attr{listener("click")})

	patches := Diff(old, next)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d: %v", len(patches), patches)
	}
}

func TestDiffAttributeVariantSwitch(t *testing.T) {
	// A name moving between the plain and listener variants is a
	// removal in the old category plus an addition in the new one.
	old := Elem("div", []Attr{attr("toggle", "on")})
	next := Elem("div", []Attr{listener("toggle")})

	patches := Diff(old, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchRemoveAttributes {
		t.Errorf("patches[0].Op = %v, want RemoveAttributes", patches[0].Op)
	}
	if patches[1].Op != PatchAddEventListener {
		t.Errorf("patches[1].Op = %v, want AddEventListener", patches[1].Op)
	}
}

func TestDiffChildrenGrowth(t *testing.T) {
	old := Elem("ul", nil,
		Elem("li", nil, Text("one")),
		Elem("li", nil, Text("two")),
	)
	next := Elem("ul", nil,
		Elem("li", nil, Text("one")),
		Elem("li", nil, Text("two")),
		Elem("li", nil, Text("three")),
		Elem("li", nil, Text("four")),
	)

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchAppendChildren {
		t.Errorf("Op = %v, want AppendChildren", p.Op)
	}
	if p.TargetIndex() != 0 || p.Tag != "ul" {
		t.Errorf("target = <%s>@%d, want <ul>@0", p.Tag, p.TargetIndex())
	}
	if len(p.Children) != 2 {
		t.Fatalf("Children = %d, want 2", len(p.Children))
	}
	if p.Children[0] != next.Children[2] || p.Children[1] != next.Children[3] {
		t.Error("AppendChildren payload should share the new tree's child nodes")
	}
}

func TestDiffChildrenShrink(t *testing.T) {
	old := Elem("ul", nil,
		Elem("li", nil, Text("one")),
		Elem("li", nil, Text("two")),
		Elem("li", nil, Text("three")),
	)
	next := Elem("ul", nil,
		Elem("li", nil, Text("one")),
	)

	patches := Diff(old, next)

	if len(patches) != 1 {
		t.Fatalf("Expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchTruncateChildren {
		t.Errorf("Op = %v, want TruncateChildren", p.Op)
	}
	if p.KeepLen != 1 {
		t.Errorf("KeepLen = %d, want 1", p.KeepLen)
	}
}

func TestDiffIndexStability(t *testing.T) {
	// root(0), child0(1), child0.child0(2), child1(3): mutations inside
	// child0's subtree must not shift child1's index.
	old := Elem("div", nil,
		Elem("section", nil, Text("before")),
		Elem("span", []Attr{attr("class", "old")}),
	)
	next := Elem("div", nil,
		Elem("section", nil, Text("after")),
		Elem("span", []Attr{attr("class", "new")}),
	)

	patches := Diff(old, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchChangeText || patches[0].TargetIndex() != 2 {
		t.Errorf("patches[0] = %s@%d, want ChangeText@2", patches[0].Op, patches[0].TargetIndex())
	}
	if patches[1].Op != PatchAddAttributes || patches[1].TargetIndex() != 3 {
		t.Errorf("patches[1] = %s@%d, want AddAttributes@3", patches[1].Op, patches[1].TargetIndex())
	}
}

func TestDiffReplaceSkipsOldSubtreeIndices(t *testing.T) {
	// The replaced subtree occupies indices 1..3 in the old numbering;
	// the sibling after it must still be addressed as 4.
	old := Elem("div", nil,
		Elem("ul", nil,
			Elem("li", nil, Text("x")),
		),
		Text("tail"),
	)
	next := Elem("div", nil,
		Elem("ol", nil,
			Elem("li", nil, Text("x")),
		),
		Text("new tail"),
	)

	patches := Diff(old, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchReplace || patches[0].TargetIndex() != 1 {
		t.Errorf("patches[0] = %s@%d, want Replace@1", patches[0].Op, patches[0].TargetIndex())
	}
	if patches[1].Op != PatchChangeText || patches[1].TargetIndex() != 4 {
		t.Errorf("patches[1] = %s@%d, want ChangeText@4", patches[1].Op, patches[1].TargetIndex())
	}
}

func TestDiffTruncateKeepsDownstreamIndices(t *testing.T) {
	// Truncated old children still occupy indices; the parent's next
	// sibling keeps its old-tree position.
	old := Elem("div", nil,
		Elem("ul", nil,
			Elem("li", nil, Text("a")), // 2,3
			Elem("li", nil, Text("b")), // 4,5
		),
		Elem("p", nil, Text("para")), // 6,7
	)
	next := Elem("div", nil,
		Elem("ul", nil,
			Elem("li", nil, Text("a")),
		),
		Elem("p", nil, Text("changed")),
	)

	patches := Diff(old, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchTruncateChildren || patches[0].TargetIndex() != 1 {
		t.Errorf("patches[0] = %s@%d, want TruncateChildren@1", patches[0].Op, patches[0].TargetIndex())
	}
	if patches[1].Op != PatchChangeText || patches[1].TargetIndex() != 7 {
		t.Errorf("patches[1] = %s@%d, want ChangeText@7", patches[1].Op, patches[1].TargetIndex())
	}
}

func TestDiffEmissionOrder(t *testing.T) {
	// Per-node order: attribute patches first, then child patches in
	// traversal order, then the children-count patch for the node.
	old := Elem("div", []Attr{attr("class", "old")},
		Elem("p", nil, Text("old text")),
	)
	next := Elem("div", []Attr{attr("class", "new")},
		Elem("p", nil, Text("new text")),
		Elem("p", nil, Text("appended")),
	)

	patches := Diff(old, next)

	if len(patches) != 3 {
		t.Fatalf("Expected 3 patches, got %d: %v", len(patches), patches)
	}
	want := []PatchOp{PatchAddAttributes, PatchChangeText, PatchAppendChildren}
	for i, op := range want {
		if patches[i].Op != op {
			t.Errorf("patches[%d].Op = %v, want %v", i, patches[i].Op, op)
		}
	}
	if patches[2].TargetIndex() != 0 {
		t.Errorf("AppendChildren index = %d, want 0", patches[2].TargetIndex())
	}
}

func TestDiffDeepTreeSingleChange(t *testing.T) {
	build := func(title string) *Node {
		return Elem("div", nil,
			Elem("header", nil, Elem("h1", nil, Text(title))),
			Elem("main", nil,
				Elem("article", nil,
					Elem("p", nil, Text("Paragraph 1")),
					Elem("p", nil, Text("Paragraph 2")),
				),
			),
			Elem("footer", nil, Text("Footer")),
		)
	}

	patches := Diff(build("Title"), build("New Title"))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchChangeText || patches[0].Text != "New Title" {
		t.Errorf("got %s %q, want ChangeText %q", patches[0].Op, patches[0].Text, "New Title")
	}
}

func TestDiffDuplicateAttrsMergedBeforeCompare(t *testing.T) {
	// Duplicate names collapse before comparison, so a duplicate whose
	// winning value matches the other side produces no patch.
	old := Elem("div", []Attr{attr("class", "a")})
	next := Elem("div", []Attr{attr("class", "ignored"), attr("class", "a")})

	patches := Diff(old, next)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches after merge, got %d: %v", len(patches), patches)
	}
}

func TestMergeAttrs(t *testing.T) {
	merged := MergeAttrs([]Attr{
		attr("class", "first"),
		attr("id", "x"),
		attr("class", "second"),
	})

	if len(merged) != 2 {
		t.Fatalf("Expected 2 merged attrs, got %d", len(merged))
	}
	if merged[0].Name != "class" || merged[0].Value != "second" {
		t.Errorf("merged[0] = %v, want class=second (last value, first position)", merged[0])
	}
	if merged[1].Name != "id" || merged[1].Value != "x" {
		t.Errorf("merged[1] = %v, want id=x", merged[1])
	}
}

func TestPatchOpString(t *testing.T) {
	tests := []struct {
		op   PatchOp
		want string
	}{
		{PatchAppendChildren, "AppendChildren"},
		{PatchTruncateChildren, "TruncateChildren"},
		{PatchReplace, "Replace"},
		{PatchAddAttributes, "AddAttributes"},
		{PatchRemoveAttributes, "RemoveAttributes"},
		{PatchAddEventListener, "AddEventListener"},
		{PatchRemoveEventListener, "RemoveEventListener"},
		{PatchChangeText, "ChangeText"},
		{PatchOp(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("PatchOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
