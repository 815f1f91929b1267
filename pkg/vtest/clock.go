package vtest

import (
	"sort"
	"sync"
	"time"

	"github.com/fleetcore/hxglue/pkg/toast"
)

// Clock is a manual toast.Scheduler. Time only moves when Advance is
// called, and due callbacks run on the caller's goroutine in deadline order.
//
// Example:
//
//	clock := vtest.NewClock()
//	toasts := toast.New(container, toast.WithScheduler(clock))
//	toasts.Success("Saved")
//	clock.Advance(4300 * time.Millisecond) // toast is gone
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*clockTimer
}

type clockTimer struct {
	clock    *Clock
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewClock creates a Clock at elapsed time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc implements toast.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &clockTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Stop implements toast.Timer.
func (t *clockTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	c.drop(t)
	return true
}

// Advance moves time forward by d, firing every timer that falls due,
// including timers scheduled by callbacks within the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.deadline
		next.done = true
		c.drop(next)
		c.mu.Unlock()

		next.fn()
	}
}

// Elapsed returns the time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Clock) nextDue(target time.Duration) *clockTimer {
	due := make([]*clockTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if t.deadline <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (c *Clock) drop(t *clockTimer) {
	for i, o := range c.timers {
		if o == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
