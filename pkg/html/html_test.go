package html

import (
	"errors"
	"testing"

	"github.com/loom-ui/loom/pkg/vdom"
)

func TestCreateElementArgs(t *testing.T) {
	extra := []vdom.Attr{Data("k", "v"), TabIndex(2)}
	kids := []*vdom.Node{Li("a"), nil, Li("b")}

	node := Ul(
		nil, // conditional attribute that evaluated to nothing
		ID("list"),
		extra,
		"lead text",
		kids,
		Li("c"),
	)

	if node.Kind != vdom.KindElement || node.Tag != "ul" {
		t.Fatalf("node = %s <%s>, want element <ul>", node.Kind, node.Tag)
	}

	wantAttrs := []vdom.Attr{
		{Name: "id", Value: "list"},
		{Name: "data-k", Value: "v"},
		{Name: "tabindex", Value: "2"},
	}
	if len(node.Attrs) != len(wantAttrs) {
		t.Fatalf("attrs = %v, want %v", node.Attrs, wantAttrs)
	}
	for i, want := range wantAttrs {
		if node.Attrs[i] != want {
			t.Errorf("attrs[%d] = %v, want %v", i, node.Attrs[i], want)
		}
	}

	if len(node.Children) != 4 {
		t.Fatalf("children = %d, want 4 (nil child dropped)", len(node.Children))
	}
	if node.Children[0].Kind != vdom.KindText || node.Children[0].Text != "lead text" {
		t.Errorf("children[0] = %+v, want text shorthand", node.Children[0])
	}
	if node.Children[3].Tag != "li" {
		t.Errorf("children[3].Tag = %q, want li", node.Children[3].Tag)
	}
}

func TestCreateElementMergesDuplicateAttrs(t *testing.T) {
	node := Div(Class("a"), Class("b"))
	if len(node.Attrs) != 1 {
		t.Fatalf("attrs = %v, want single merged class", node.Attrs)
	}
	if got := node.Attrs[0].Value; got != "b" {
		t.Errorf("class = %q, want last write %q", got, "b")
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		got  vdom.Attr
		want vdom.Attr
	}{
		{ID("x"), vdom.Attr{Name: "id", Value: "x"}},
		{Class("one", "two"), vdom.Attr{Name: "class", Value: "one two"}},
		{StyleAttr("color:red"), vdom.Attr{Name: "style", Value: "color:red"}},
		{TitleAttr("tip"), vdom.Attr{Name: "title", Value: "tip"}},
		{Data("id", "123"), vdom.Attr{Name: "data-id", Value: "123"}},
		{Href("/home"), vdom.Attr{Name: "href", Value: "/home"}},
		{Type("text"), vdom.Attr{Name: "type", Value: "text"}},
		{Placeholder("name"), vdom.Attr{Name: "placeholder", Value: "name"}},
		{Disabled(true), vdom.Attr{Name: "disabled", Value: "true"}},
		{AriaHidden(false), vdom.Attr{Name: "aria-hidden", Value: "false"}},
		{TabIndex(-1), vdom.Attr{Name: "tabindex", Value: "-1"}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("attr = %v, want %v", tt.got, tt.want)
		}
	}
}

func TestOnClickTypedPayload(t *testing.T) {
	var got vdom.MouseEvent
	a := OnClick(func(e vdom.MouseEvent) { got = e })

	if a.Name != "click" || !a.IsListener() {
		t.Fatalf("attr = %+v, want click listener", a)
	}

	ev := vdom.MouseEvent{Type: "click", Button: vdom.MouseRight}
	if err := a.Listener.Emit(ev); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != ev {
		t.Errorf("payload = %+v, want %+v", got, ev)
	}

	err := a.Listener.Emit("not a mouse event")
	if !errors.Is(err, vdom.ErrUnrecognizedEventPayload) {
		t.Errorf("err = %v, want ErrUnrecognizedEventPayload", err)
	}
}

func TestOnInputValueShorthand(t *testing.T) {
	var got vdom.InputEvent
	a := OnInput(func(e vdom.InputEvent) { got = e })

	if err := a.Listener.Emit("typed text"); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got.Value != "typed text" {
		t.Errorf("value = %q, want %q", got.Value, "typed text")
	}
}

func TestOnKeyDownPointerPayload(t *testing.T) {
	var got vdom.KeyEvent
	a := OnKeyDown(func(e vdom.KeyEvent) { got = e })

	ev := &vdom.KeyEvent{Key: "Enter", Repeat: true}
	if err := a.Listener.Emit(ev); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != *ev {
		t.Errorf("payload = %+v, want %+v", got, *ev)
	}
}

func TestOnSubmitUnitPayload(t *testing.T) {
	fired := false
	a := OnSubmit(func(vdom.UnitEvent) { fired = true })

	// Unit events discard whatever the platform reports.
	if err := a.Listener.Emit(map[string]any{"ignored": true}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if !fired {
		t.Error("submit handler did not fire")
	}
}

func TestOnUnknownEventPassesRawPayload(t *testing.T) {
	var got any
	a := On("custom-sync", func(p any) { got = p })

	if err := a.Listener.Emit(42); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != 42 {
		t.Errorf("payload = %v, want raw 42", got)
	}
}

func TestBuilderDiffsCleanly(t *testing.T) {
	view := func(count int) *vdom.Node {
		return Div(Class("counter"),
			H1(Textf("Count: %d", count)),
			Button(OnClick(func(vdom.MouseEvent) {}), Text("+1")),
		)
	}

	if patches := vdom.Diff(view(1), view(1)); len(patches) != 0 {
		t.Errorf("diff of equal views = %v, want empty", patches)
	}

	patches := vdom.Diff(view(1), view(2))
	if len(patches) != 1 || patches[0].Op != vdom.PatchChangeText {
		t.Fatalf("patches = %v, want single ChangeText", patches)
	}
	if patches[0].Text != "Count: 2" {
		t.Errorf("text = %q, want %q", patches[0].Text, "Count: 2")
	}
}
