package toast

import (
	"github.com/fleetcore/hxglue/pkg/vdom"
)

// ContainerID is the well-known id of the element toasts are appended to.
const ContainerID = "toast-container"

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Normalize applies the default type: an empty type means success.
func (t Type) Normalize() Type {
	if t == "" {
		return TypeSuccess
	}
	return t
}

// Category returns the visual category for t. Success and error keep their
// own look; anything else, including unknown values, renders as info.
func (t Type) Category() Type {
	switch t.Normalize() {
	case TypeSuccess:
		return TypeSuccess
	case TypeError:
		return TypeError
	default:
		return TypeInfo
	}
}

// Request is a notification request, as carried by the showToast trigger.
type Request struct {
	Message string `json:"message"`
	Type    Type   `json:"type"`
}

// State is a toast's lifecycle position.
//
//	Created --(display elapsed or Dismiss)--> Dismissing --(leave elapsed)--> Removed
type State uint8

const (
	// StatePending: built by Show but not yet attached by the loop.
	StatePending State = iota
	// StateCreated: attached and visible.
	StateCreated
	// StateDismissing: still attached, marked not visible for the exit
	// transition.
	StateDismissing
	// StateRemoved: detached. Terminal.
	StateRemoved
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCreated:
		return "created"
	case StateDismissing:
		return "dismissing"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Toast is one notification attached to the container.
//
// The node belongs to the page tree and must only be read on the loop.
type Toast struct {
	id      string
	message string
	typ     Type
	node    *vdom.VNode
	state   State
	manager *Manager

	autoTimer  Timer
	leaveTimer Timer
}

// ID returns the toast element's id.
func (t *Toast) ID() string { return t.id }

// Message returns the message as given to Show.
func (t *Toast) Message() string { return t.message }

// Type returns the normalized toast type.
func (t *Toast) Type() Type { return t.typ }

// Node returns the toast's element.
func (t *Toast) Node() *vdom.VNode { return t.node }

// State returns the lifecycle state.
func (t *Toast) State() State {
	t.manager.mu.RLock()
	defer t.manager.mu.RUnlock()
	return t.state
}

// Visible reports whether the toast is attached and not on its way out.
func (t *Toast) Visible() bool { return t.State() == StateCreated }

// Dismiss starts the exit transition, as the dismiss control does when
// clicked. It cancels the pending auto-dismiss and is a no-op once the
// toast is already leaving. Safe to call from any goroutine.
func (t *Toast) Dismiss() {
	t.manager.dispatcher.Dispatch(func() {
		t.manager.beginDismiss(t, CauseManual)
	})
}
