package toast

import (
	"encoding/json"

	"github.com/fleetcore/hxglue/pkg/htmx"
)

// TriggerName is the trigger header entry that requests a toast.
const TriggerName = "showToast"

// DecodeTrigger extracts a toast request from a trigger header value such as
//
//	{"showToast":{"message":"Saved","type":"success"}}
//
// The request is only valid when the outcome is OutcomeToast. Decoding
// never fails loudly: the header is a best-effort side channel.
//
// A missing type means success. A type that is present but not a
// non-empty string (null, a number, an object) decodes as TypeInfo, so the
// toast still shows in the info style.
func DecodeTrigger(value string) (Request, DecodeOutcome) {
	if value == "" {
		return Request{}, OutcomeAbsent
	}

	triggers, err := htmx.ParseTriggers(value)
	if err != nil {
		return Request{}, OutcomeMalformed
	}
	if !triggers.Has(TriggerName) {
		return Request{}, OutcomeIgnored
	}

	var p payload
	if !triggers.Decode(TriggerName, &p) {
		return Request{}, OutcomeMalformed
	}
	// An empty message is dropped rather than shown as a blank toast.
	if p.Message == "" {
		return Request{}, OutcomeMalformed
	}
	return Request{Message: p.Message, Type: decodeType(p.Type)}, OutcomeToast
}

type payload struct {
	Message string          `json:"message"`
	Type    json.RawMessage `json:"type"`
}

func decodeType(raw json.RawMessage) Type {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return TypeInfo
	}
	return Type(s)
}

// ShowFromTrigger shows the toast requested by a trigger header value, if
// any. Absent, malformed and unrelated values are silently dropped.
func (m *Manager) ShowFromTrigger(value string) *Toast {
	req, outcome := DecodeTrigger(value)
	m.observer.TriggerDecoded(outcome)
	if outcome != OutcomeToast {
		return nil
	}
	return m.Show(req.Message, req.Type)
}

// HandleAfterRequest inspects a completed exchange for toast requests. It is
// meant to be subscribed to the bus:
//
//	bus.OnAfterRequest(toasts.HandleAfterRequest)
func (m *Manager) HandleAfterRequest(e htmx.RequestEvent) {
	if e.Err != nil || e.Response == nil {
		return
	}
	for _, name := range m.headers {
		m.ShowFromTrigger(e.Response.Header.Get(name))
	}
}
