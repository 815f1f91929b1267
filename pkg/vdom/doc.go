// Package vdom provides the Go-side page tree for hxglue.
//
// The tree is an in-memory representation of the page that partial updates
// splice into and that toasts attach themselves to. Nodes are mutable and
// keep parent links, so a node can detach itself without its owner's help.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes, built from Attr values.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    P(Text("Content")),
//	)
//
// # Mutation
//
// AppendChild, InsertBefore, RemoveChild, Remove, ReplaceChildren and
// ReplaceWith keep Parent links consistent. Remove on a detached node is a
// harmless no-op.
//
// # Parsing
//
// ParseFragment turns HTML returned by a server into detached nodes, ready
// to be swapped into the tree.
//
// The tree is not safe for concurrent use. hxglue mutates it only from its
// event loop.
package vdom
