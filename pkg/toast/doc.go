// Package toast provides short-lived notifications attached to the page's
// toast container.
//
// A toast is shown, stays for four seconds, then fades out for 300ms and
// is detached. The dismiss control cuts the four seconds short; the
// pending auto-dismiss is cancelled rather than left to fire on a node that
// is already gone.
//
//	toasts := toast.New(container,
//	    toast.WithDispatcher(loop),
//	    toast.WithObserver(collector),
//	)
//	toasts.Success("Vehicle saved")
//
// # Server-triggered toasts
//
// Servers raise a toast by setting the HX-Trigger response header:
//
//	HX-Trigger: {"showToast":{"message":"Saved","type":"success"}}
//
// Subscribe the manager to the exchange bus to pick these up:
//
//	bus.OnAfterRequest(toasts.HandleAfterRequest)
//
// Values that are absent, not JSON, or lack a showToast entry are ignored.
// Other trigger names are left for other listeners.
//
// # Missing container
//
// A Manager created with a nil container does nothing. That mirrors a page
// without a toast container: no toast appears and no error is reported.
//
// # Message markup
//
// Messages are inserted as text and escaped when rendered. WithTrustedMarkup
// switches to inserting them as markup, which changes how a message
// containing tags is displayed.
package toast
