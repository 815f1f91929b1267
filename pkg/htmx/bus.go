package htmx

import (
	"net/http"
	"sync"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

// SwapEvent is emitted after a subtree has been swapped into the page.
type SwapEvent struct {
	// Target is the element the content was swapped into.
	Target *vdom.VNode
}

// RequestEvent is emitted once an HTTP exchange completes, successfully or
// not. Response is nil when Err is set.
type RequestEvent struct {
	Request  *http.Request
	Response *http.Response
	Err      error
}

// Bus delivers the host's page-update lifecycle events.
//
// Handlers run synchronously on the emitting goroutine, in subscription
// order. Swap events are emitted from the event loop; request events from
// whichever goroutine performed the exchange.
type Bus struct {
	mu      sync.RWMutex
	nextID  uint64
	swap    []swapSub
	request []requestSub
}

type swapSub struct {
	id uint64
	fn func(SwapEvent)
}

type requestSub struct {
	id uint64
	fn func(RequestEvent)
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnAfterSwap subscribes fn to swap events and returns its unsubscribe
// function.
func (b *Bus) OnAfterSwap(fn func(SwapEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.swap = append(b.swap, swapSub{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.swap {
			if s.id == id {
				b.swap = append(b.swap[:i:i], b.swap[i+1:]...)
				return
			}
		}
	}
}

// OnAfterRequest subscribes fn to request events and returns its
// unsubscribe function.
func (b *Bus) OnAfterRequest(fn func(RequestEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.request = append(b.request, requestSub{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.request {
			if s.id == id {
				b.request = append(b.request[:i:i], b.request[i+1:]...)
				return
			}
		}
	}
}

// EmitAfterSwap delivers e to every swap subscriber.
func (b *Bus) EmitAfterSwap(e SwapEvent) {
	b.mu.RLock()
	subs := b.swap
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(e)
	}
}

// EmitAfterRequest delivers e to every request subscriber.
func (b *Bus) EmitAfterRequest(e RequestEvent) {
	b.mu.RLock()
	subs := b.request
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(e)
	}
}
