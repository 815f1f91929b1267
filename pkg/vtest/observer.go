package vtest

import (
	"sync"

	"github.com/fleetcore/hxglue/pkg/toast"
)

// Observer records toast activity for assertions.
type Observer struct {
	mu       sync.Mutex
	Shown    []toast.Type
	Removed  []toast.DismissCause
	Outcomes []toast.DecodeOutcome
}

// ToastShown implements toast.Observer.
func (o *Observer) ToastShown(category toast.Type) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Shown = append(o.Shown, category)
}

// ToastRemoved implements toast.Observer.
func (o *Observer) ToastRemoved(cause toast.DismissCause) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Removed = append(o.Removed, cause)
}

// TriggerDecoded implements toast.Observer.
func (o *Observer) TriggerDecoded(outcome toast.DecodeOutcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Outcomes = append(o.Outcomes, outcome)
}

// Counts returns how many toasts were shown and removed.
func (o *Observer) Counts() (shown, removed int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.Shown), len(o.Removed)
}
