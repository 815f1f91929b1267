package htmx

import "net/http"

// Request headers
const (
	HeaderRequest        = "HX-Request"
	HeaderBoosted        = "HX-Boosted"
	HeaderHistoryRestore = "HX-History-Restore-Request"
	HeaderPrompt         = "HX-Prompt"
	HeaderTarget         = "HX-Target"
	HeaderTriggerName    = "HX-Trigger-Name"
	HeaderCurrentURL     = "HX-Current-URL"
)

// Response headers
const (
	// HeaderTrigger doubles as a request header (id of the triggering
	// element) and a response header (client-side events to fire).
	HeaderTrigger            = "HX-Trigger"
	HeaderTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderRedirect           = "HX-Redirect"
	HeaderRefresh            = "HX-Refresh"
	HeaderLocation           = "HX-Location"
	HeaderPushURL            = "HX-Push-Url"
	HeaderReplaceURL         = "HX-Replace-Url"
	HeaderReswap             = "HX-Reswap"
	HeaderRetarget           = "HX-Retarget"
	HeaderReselect           = "HX-Reselect"
)

// Event names, as emitted by the browser library.
const (
	EventAfterSwap    = "htmx:afterSwap"
	EventAfterRequest = "htmx:afterRequest"
)

// IsRequest checks if the request carries the HX-Request marker.
func IsRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(HeaderRequest) == "true"
}

// Retarget returns the HX-Retarget element id from a response, if any.
func Retarget(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	return resp.Header.Get(HeaderRetarget)
}

// Reswap returns the HX-Reswap swap style from a response, if any.
func Reswap(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	return resp.Header.Get(HeaderReswap)
}
