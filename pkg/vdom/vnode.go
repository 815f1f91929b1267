package vdom

import (
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (trusted markup)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node in the page tree.
//
// Unlike a render-only virtual DOM, VNodes here are long-lived and mutable:
// partial updates splice new subtrees in, and toasts append and detach
// themselves. Parent links are maintained by the mutation methods; code that
// edits Children directly must keep them consistent itself.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
	Parent   *VNode   // Owning node, nil when detached
}

// Props holds attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attr returns the string value of the attribute key, and whether it is set.
func (v *VNode) Attr(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	val, ok := v.Props[key]
	if !ok {
		return "", false
	}
	return AttrString(val), true
}

// SetAttr sets an attribute on an element node.
func (v *VNode) SetAttr(key string, value any) {
	if v == nil || v.Kind != KindElement {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// RemoveAttr deletes an attribute.
func (v *VNode) RemoveAttr(key string) {
	if v == nil || v.Props == nil {
		return
	}
	delete(v.Props, key)
}

// ID returns the element's id attribute.
func (v *VNode) ID() string {
	id, _ := v.Attr("id")
	return id
}

// HasClass reports whether the class attribute contains name.
func (v *VNode) HasClass(name string) bool {
	classes, ok := v.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// IsAttached reports whether the node is reachable from root by parent links.
func (v *VNode) IsAttached(root *VNode) bool {
	for n := v; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Walk visits v and its descendants depth first. Returning false from fn
// skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	// Copy so fn may detach children while walking.
	children := append([]*VNode(nil), v.Children...)
	for _, child := range children {
		child.Walk(fn)
	}
}

// GetElementByID returns the first element in the subtree with the given id.
func (v *VNode) GetElementByID(id string) *VNode {
	if id == "" {
		return nil
	}
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// TextContent returns the concatenated text of the subtree. Raw nodes
// contribute the text of their markup, not the tags.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		switch n.Kind {
		case KindText:
			b.WriteString(n.Text)
		case KindRaw:
			b.WriteString(markupText(n.Text))
		}
		return true
	})
	return b.String()
}

// AttrString converts an attribute value to its string form.
func AttrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmtValue(v)
	}
}
