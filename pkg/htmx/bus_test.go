package htmx

import (
	"testing"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

func TestBusSwapSubscribers(t *testing.T) {
	bus := NewBus()
	target := vdom.Div()

	var calls []string
	unsubA := bus.OnAfterSwap(func(e SwapEvent) {
		if e.Target != target {
			t.Error("unexpected target")
		}
		calls = append(calls, "a")
	})
	bus.OnAfterSwap(func(SwapEvent) { calls = append(calls, "b") })

	bus.EmitAfterSwap(SwapEvent{Target: target})
	unsubA()
	unsubA()
	bus.EmitAfterSwap(SwapEvent{Target: target})

	want := []string{"a", "b", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestBusRequestSubscribers(t *testing.T) {
	bus := NewBus()

	count := 0
	unsub := bus.OnAfterRequest(func(RequestEvent) { count++ })
	bus.EmitAfterRequest(RequestEvent{})
	unsub()
	bus.EmitAfterRequest(RequestEvent{})

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestBusSubscribeDuringEmit(t *testing.T) {
	bus := NewBus()

	late := 0
	bus.OnAfterSwap(func(SwapEvent) {
		bus.OnAfterSwap(func(SwapEvent) { late++ })
	})

	bus.EmitAfterSwap(SwapEvent{})
	if late != 0 {
		t.Errorf("subscriber added during emit ran %d times", late)
	}
	bus.EmitAfterSwap(SwapEvent{})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}
