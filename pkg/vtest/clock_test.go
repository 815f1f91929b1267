package vtest

import (
	"testing"
	"time"
)

func TestClockFiresInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var got []string

	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "b") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })

	c.Advance(299 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 299ms got %v", got)
	}

	c.Advance(time.Millisecond)
	if len(got) != 3 || got[1] != "b" || got[2] != "c" {
		t.Fatalf("after 300ms got %v", got)
	}
	if c.Elapsed() != 300*time.Millisecond {
		t.Errorf("Elapsed() = %v", c.Elapsed())
	}
}

func TestClockChainedTimers(t *testing.T) {
	c := NewClock()
	var firedAt []time.Duration

	c.AfterFunc(4*time.Second, func() {
		firedAt = append(firedAt, c.Elapsed())
		c.AfterFunc(300*time.Millisecond, func() {
			firedAt = append(firedAt, c.Elapsed())
		})
	})

	c.Advance(10 * time.Second)

	if len(firedAt) != 2 {
		t.Fatalf("fired %d times, want 2", len(firedAt))
	}
	if firedAt[0] != 4*time.Second || firedAt[1] != 4300*time.Millisecond {
		t.Errorf("firedAt = %v", firedAt)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d", c.Pending())
	}
}

func TestClockStop(t *testing.T) {
	c := NewClock()
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	done := c.AfterFunc(0, func() {})
	c.Advance(0)
	if done.Stop() {
		t.Error("Stop after firing should report false")
	}
}
