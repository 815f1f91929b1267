package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateElement(t *testing.T) {
	t.Run("with attributes", func(t *testing.T) {
		node := Div(Class("card", "", " wide "), ID("main"), nil)
		if node.Props["class"] != "card wide" {
			t.Errorf("class = %v, want 'card wide'", node.Props["class"])
		}
		if node.ID() != "main" {
			t.Errorf("ID() = %q, want main", node.ID())
		}
	})

	t.Run("children get parent links", func(t *testing.T) {
		child := P("Hello")
		node := Div(child, []*VNode{Span(), nil})
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %d, want 2", len(node.Children))
		}
		if child.Parent != node {
			t.Error("child.Parent not set")
		}
		if child.Children[0].Kind != KindText {
			t.Errorf("string arg should become text node, got %v", child.Children[0].Kind)
		}
	})

	t.Run("fragment children are flattened", func(t *testing.T) {
		node := Div(Fragment(Span(), Span()))
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %d, want 2", len(node.Children))
		}
		for _, c := range node.Children {
			if c.Kind != KindElement || c.Parent != node {
				t.Errorf("unexpected child %+v", c)
			}
		}
	})
}

func TestAttrAccessors(t *testing.T) {
	node := Div(Data("visible", "true"), AttrOf("hx-get", "/x"))

	if v, ok := node.Attr("data-visible"); !ok || v != "true" {
		t.Errorf("Attr(data-visible) = %q, %v", v, ok)
	}
	if _, ok := node.Attr("missing"); ok {
		t.Error("Attr(missing) should not be set")
	}

	node.SetAttr("data-visible", false)
	if v, _ := node.Attr("data-visible"); v != "false" {
		t.Errorf("after SetAttr = %q, want false", v)
	}

	node.RemoveAttr("hx-get")
	if _, ok := node.Attr("hx-get"); ok {
		t.Error("RemoveAttr did not remove")
	}

	Text("x").SetAttr("id", "ignored")

	var nilNode *VNode
	if _, ok := nilNode.Attr("id"); ok {
		t.Error("nil node should have no attributes")
	}
}

func TestHasClass(t *testing.T) {
	node := Div(Class("toast", "toast-success"))
	if !node.HasClass("toast") || !node.HasClass("toast-success") {
		t.Error("expected both classes")
	}
	if node.HasClass("toast-error") || node.HasClass("toas") {
		t.Error("unexpected class match")
	}
}

func TestGetElementByID(t *testing.T) {
	target := Span(ID("target"))
	root := Div(ID("root"), Section(P(), target), Span(ID("other")))

	if got := root.GetElementByID("target"); got != target {
		t.Errorf("GetElementByID(target) = %v", got)
	}
	if got := root.GetElementByID("root"); got != root {
		t.Error("root should match itself")
	}
	if root.GetElementByID("nope") != nil {
		t.Error("expected nil for missing id")
	}
	if root.GetElementByID("") != nil {
		t.Error("expected nil for empty id")
	}
}

func TestTextContent(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"text", Text("hi"), "hi"},
		{"nested", Div(Span("a"), P("b", Strong("c"))), "abc"},
		{"raw markup", Div(Raw("<b>bold</b> &amp; more")), "bold & more"},
		{"raw plain", Raw("plain"), "plain"},
		{"empty element", Button(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.TextContent(); got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAttached(t *testing.T) {
	leaf := Span()
	root := Div(Div(leaf))

	if !leaf.IsAttached(root) {
		t.Error("leaf should be attached")
	}
	leaf.Remove()
	if leaf.IsAttached(root) {
		t.Error("leaf should be detached")
	}
}
