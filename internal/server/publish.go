package server

import (
	"log/slog"

	"github.com/fleetcore/hxglue/internal/live"
	"github.com/fleetcore/hxglue/pkg/render"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

// Publisher returns a Host OnChange callback that pushes the content of
// the changed element to hub. When the changed element has no id, the
// nearest ancestor with one is published; at the top of the tree, each
// identified child is published instead.
//
// The callback runs on the host loop.
func Publisher(hub *live.Hub, logger *slog.Logger) func(*vdom.VNode) {
	if logger == nil {
		logger = slog.Default()
	}
	r := render.NewRenderer(render.RendererConfig{})

	publish := func(n *vdom.VNode, id string) {
		html, err := r.RenderChildren(n)
		if err != nil {
			logger.Warn("live render failed", "target", id, "error", err)
			return
		}
		hub.Publish(id, html)
	}

	return func(changed *vdom.VNode) {
		for n := changed; n != nil; n = n.Parent {
			if id, ok := n.Attr("id"); ok && id != "" {
				publish(n, id)
				return
			}
		}
		if changed == nil {
			return
		}
		for _, c := range changed.Children {
			if id, ok := c.Attr("id"); ok && id != "" {
				publish(c, id)
			}
		}
	}
}
