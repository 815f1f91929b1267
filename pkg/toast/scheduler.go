package toast

import "time"

// Timer is a pending fire-once callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or was stopped.
	Stop() bool
}

// Scheduler creates fire-once timers. Callbacks may run on any goroutine;
// the Manager hands them to its dispatcher.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealTime schedules with time.AfterFunc.
var RealTime Scheduler = realTime{}

type realTime struct{}

func (realTime) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
