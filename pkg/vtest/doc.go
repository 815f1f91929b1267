// Package vtest provides testing helpers for hxglue pages.
//
// # Quick Start
//
//	func TestSavedToast(t *testing.T) {
//	    container := vdom.Div(vdom.ID(toast.ContainerID))
//	    clock := vtest.NewClock()
//	    toasts := toast.New(container, toast.WithScheduler(clock))
//
//	    toasts.Success("Saved")
//	    vtest.ExpectContains(t, container, "Saved")
//
//	    clock.Advance(toast.DefaultDisplayDuration + toast.DefaultLeaveDuration)
//	    vtest.ExpectChildren(t, container, 0)
//	}
//
// # Clock
//
// Clock implements toast.Scheduler with manually advanced time so lifecycle
// tests are exact and instant.
//
// # Observer
//
// Observer records toast.Observer calls.
package vtest
