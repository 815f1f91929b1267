package reactivity

import "github.com/fleetcore/hxglue/pkg/htmx"

// Hook re-initialises runtime on every swapped fragment: each AfterSwap on
// bus runs runtime.InitTree on the event target. A nil runtime makes the
// hook a no-op. The returned func unsubscribes.
func Hook(bus *htmx.Bus, runtime Runtime) (unsubscribe func()) {
	return bus.OnAfterSwap(func(e htmx.SwapEvent) {
		if runtime == nil || e.Target == nil {
			return
		}
		runtime.InitTree(e.Target)
	})
}
