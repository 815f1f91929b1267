package htmx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotTriggerMap is returned when a trigger header is not a JSON object.
var ErrNotTriggerMap = errors.New("htmx: trigger header is not a JSON object")

// Triggers maps trigger names to their undecoded payloads, as carried by
// HX-Trigger and its After-Swap/After-Settle variants.
type Triggers map[string]json.RawMessage

// ParseTriggers decodes a trigger header value of the JSON form
//
//	{"showToast":{"message":"Saved","type":"success"},"refresh":null}
//
// The bare comma-separated form ("refresh, reload") carries no payloads and
// is reported as ErrNotTriggerMap.
func ParseTriggers(value string) (Triggers, error) {
	value = strings.TrimSpace(value)
	if value == "" || value[0] != '{' {
		return nil, ErrNotTriggerMap
	}

	var triggers Triggers
	if err := json.Unmarshal([]byte(value), &triggers); err != nil {
		return nil, fmt.Errorf("htmx: decode trigger header: %w", err)
	}
	return triggers, nil
}

// Has reports whether the trigger name is present.
func (t Triggers) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Decode unmarshals the payload of the named trigger into v. It reports
// false when the trigger is absent, null, or does not fit v.
func (t Triggers) Decode(name string, v any) bool {
	raw, ok := t[name]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
