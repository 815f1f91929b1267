// Package htmx implements the client half of the htmx exchange for a
// Go-side page: header names, trigger header decoding, the lifecycle event
// bus, an HTTP transport that emits request events, and content swapping.
//
// # Lifecycle
//
// An exchange made through Transport emits a RequestEvent when it completes.
// When the host swaps the response body into the page it emits a SwapEvent
// naming the element that received the content:
//
//	bus := htmx.NewBus()
//	bus.OnAfterRequest(func(e htmx.RequestEvent) { ... })
//	bus.OnAfterSwap(func(e htmx.SwapEvent) { ... })
//
//	client := &http.Client{Transport: htmx.NewTransport(bus)}
//
// # Trigger headers
//
// Servers request client-side actions through HX-Trigger. ParseTriggers
// decodes the JSON object form into a name to payload map.
package htmx
