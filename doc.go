// Package hxglue runs the client half of a server-rendered page in Go.
//
// A Host keeps the page tree, performs htmx-style exchanges against an
// upstream application, swaps the returned fragments into the tree, shows
// the toasts the upstream requests through HX-Trigger, and re-initialises
// declarative bindings in swapped content.
//
// # Quick Start
//
//	host, err := hxglue.New(hxglue.Config{
//	    BaseURL: "http://localhost:8080",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go host.Run(ctx)
//
//	// Upstream answers with a fragment and
//	// HX-Trigger: {"showToast":{"message":"Vehicle deleted","type":"success"}}
//	ex, err := host.Request(ctx, http.MethodPost, "/vehicles/42/delete", nil, "vehicles", htmx.SwapOuterHTML)
//
// # Bindings
//
//	host.Registry().Register("Counter", func(n *vdom.VNode, c reactivity.Config) {
//	    n.SetAttr("data-count", c.Int("start"))
//	})
//
// Elements in swapped fragments carrying v-hook="Counter:{...}" are
// initialised once, right after the swap.
package hxglue
