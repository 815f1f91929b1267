// Package render turns vdom trees into HTML.
//
// The render package converts VNode trees into HTML strings or streams,
// handling all aspects of producing valid, secure HTML output including:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, hidden, etc.)
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// Text nodes are always escaped. Raw nodes are written verbatim, so only
// trusted markup should ever be placed in one.
package render
