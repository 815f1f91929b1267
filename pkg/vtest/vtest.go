package vtest

import (
	"strings"
	"testing"

	"github.com/fleetcore/hxglue/pkg/render"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

// RenderToString renders a node for assertions. Errors render as "".
//
// Example:
//
//	html := vtest.RenderToString(container)
//	if !strings.Contains(html, "Saved") {
//	    t.Error("missing toast")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, container, "Vehicle saved")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttr asserts that node carries attr with the given value.
//
// Example:
//
//	vtest.ExpectAttr(t, tst.Node(), "data-visible", "false")
func ExpectAttr(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	got, ok := node.Attr(attr)
	if !ok {
		t.Errorf("expected attribute %s=%q, attribute not set on <%s>", attr, value, node.Tag)
		return
	}
	if got != value {
		t.Errorf("attribute %s = %q, want %q", attr, got, value)
	}
}

// ExpectChildren asserts the number of children of node.
func ExpectChildren(t testing.TB, node *vdom.VNode, n int) {
	t.Helper()
	if got := len(node.Children); got != n {
		t.Errorf("expected %d children, got %d:\n%s", n, got, truncate(RenderToString(node), 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
