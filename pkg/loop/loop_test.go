package loop

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startLoop(t *testing.T, opts ...Option) *Loop {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	l := New(opts...)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(cancel)
	return l
}

func TestCallRunsInOrder(t *testing.T) {
	l := startLoop(t)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Dispatch(func() { got = append(got, i) })
	}
	if err := l.Call(context.Background(), func() { got = append(got, 99) }); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	want := []int{0, 1, 2, 3, 4, 99}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDispatchFromLoopDoesNotDeadlock(t *testing.T) {
	l := startLoop(t)

	var wg sync.WaitGroup
	wg.Add(1)
	l.Dispatch(func() {
		l.Dispatch(wg.Done)
	})

	waitOrFail(t, &wg)
}

func TestPanicIsRecovered(t *testing.T) {
	l := startLoop(t)

	l.Dispatch(func() { panic("boom") })

	ran := false
	if err := l.Call(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !ran {
		t.Error("loop should keep running after a panic")
	}
}

func TestCallAfterClose(t *testing.T) {
	l := New(WithLogger(quietLogger()))
	l.Close()
	l.Close()

	err := l.Call(context.Background(), func() {})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Call() error = %v, want ErrClosed", err)
	}

	// Dispatch after close is silently dropped.
	l.Dispatch(func() { t.Error("should not run") })
}

func TestCallRespectsContext(t *testing.T) {
	// Not running, queue of one already full.
	l := New(WithLogger(quietLogger()), WithQueueSize(1))
	l.Dispatch(func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Call(ctx, func() {}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Call() error = %v, want deadline exceeded", err)
	}
}

func TestDispatchDropsWhenFull(t *testing.T) {
	l := New(WithLogger(quietLogger()), WithQueueSize(1))
	l.Dispatch(func() {})
	l.Dispatch(func() {}) // dropped, must not block

	if got := len(l.dispatchCh); got != 1 {
		t.Errorf("queue length = %d, want 1", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := New(WithLogger(quietLogger()))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}

	select {
	case <-l.Done():
	default:
		t.Error("Done should be closed after Run returns")
	}
}

func TestDispatcherFunc(t *testing.T) {
	ran := false
	var d Dispatcher = DispatcherFunc(func(fn func()) { fn() })
	d.Dispatch(func() { ran = true })
	if !ran {
		t.Error("DispatcherFunc did not call through")
	}
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}
