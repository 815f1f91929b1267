// Package reactivity binds declarative behaviour to elements and re-applies
// it to content inserted by partial page updates.
//
// Elements opt in with a binding attribute:
//
//	Div(reactivity.Bind("Counter", map[string]any{"start": 3}))
//
// which renders as v-hook="Counter:{&#34;start&#34;:3}". A Registry maps
// binding names to initialisers:
//
//	reg := reactivity.NewRegistry()
//	reg.Register("Counter", func(n *vdom.VNode, c reactivity.Config) {
//	    n.SetAttr("data-count", c.Int("start"))
//	})
//	reactivity.Hook(bus, reg)
//
// After every swap the hook scans the new subtree; elements already
// initialised carry data-v-init and are skipped.
package reactivity
