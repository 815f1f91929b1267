package loop

import (
	"fmt"
	"sync"
	"testing"
)

func TestSerialRunsInline(t *testing.T) {
	var s Serial
	ran := false
	s.Dispatch(func() { ran = true })
	if !ran {
		t.Error("Dispatch did not run fn before returning")
	}
}

func TestSerialNestedDispatchRunsAfterCurrent(t *testing.T) {
	var s Serial
	var order []string
	s.Dispatch(func() {
		order = append(order, "outer start")
		s.Dispatch(func() { order = append(order, "inner") })
		order = append(order, "outer end")
	})

	if got := fmt.Sprint(order); got != "[outer start outer end inner]" {
		t.Errorf("order = %s", got)
	}
}

func TestSerialConcurrentDispatch(t *testing.T) {
	var s Serial
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Dispatch(func() { counter++ })
			}
		}()
	}
	wg.Wait()

	done := make(chan int, 1)
	s.Dispatch(func() { done <- counter })
	if got := <-done; got != 5000 {
		t.Errorf("counter = %d, want 5000", got)
	}
}

func TestSerialRecoversDrainAfterPanic(t *testing.T) {
	var s Serial
	func() {
		defer func() { _ = recover() }()
		s.Dispatch(func() { panic("boom") })
	}()

	ran := false
	s.Dispatch(func() { ran = true })
	if !ran {
		t.Error("Serial stayed wedged after a panic")
	}
}
