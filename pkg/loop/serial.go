package loop

import "sync"

// Serial is a Dispatcher that runs functions one at a time without a
// dedicated goroutine. The first dispatching goroutine runs the queue until
// it is empty; functions dispatched meanwhile, from any goroutine or from a
// running function, are queued and run by that goroutine in order.
//
// The zero value is ready to use.
type Serial struct {
	mu       sync.Mutex
	queue    []func()
	draining bool
}

// Dispatch runs fn, or queues it when another call is already draining.
func (s *Serial) Dispatch(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	s.queue = append(s.queue, fn)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	finished := false
	defer func() {
		// A panicking function hands draining over to the next Dispatch.
		if !finished {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()
			finished = true
			return
		}
		next := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.mu.Unlock()

		next()
	}
}
