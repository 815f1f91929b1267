package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/loop"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

const (
	// DefaultDisplayDuration is how long a toast stays before it starts
	// leaving on its own.
	DefaultDisplayDuration = 4000 * time.Millisecond

	// DefaultLeaveDuration matches the exit transition; the node is
	// detached once it has elapsed.
	DefaultLeaveDuration = 300 * time.Millisecond
)

// Initializer binds declarative behaviour inside a freshly inserted
// subtree. *reactivity.Registry satisfies it.
type Initializer interface {
	InitTree(root *vdom.VNode)
}

// Option configures a Manager.
type Option func(*Manager)

// WithDispatcher sets where DOM work runs, typically the page's *loop.Loop.
// Without it the Manager serialises its work through its own loop.Serial;
// the container must then only be read from functions dispatched to it.
func WithDispatcher(d loop.Dispatcher) Option {
	return func(m *Manager) {
		if d != nil {
			m.dispatcher = d
		}
	}
}

// WithScheduler sets the timer source. Defaults to RealTime.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) {
		if s != nil {
			m.scheduler = s
		}
	}
}

// WithObserver sets the activity observer.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithRuntime sets the runtime that initialises each new toast's bindings.
func WithRuntime(r Initializer) Option {
	return func(m *Manager) {
		m.runtime = r
	}
}

// WithOnChange registers fn to run on the loop after every container
// mutation.
func WithOnChange(fn func()) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// WithDurations overrides the display and leave durations. Non-positive
// values keep the defaults.
func WithDurations(display, leave time.Duration) Option {
	return func(m *Manager) {
		if display > 0 {
			m.display = display
		}
		if leave > 0 {
			m.leave = leave
		}
	}
}

// WithTrustedMarkup inserts messages as markup instead of text. Only enable
// it when every message source is trusted: a message containing markup is
// rendered, scripts included.
func WithTrustedMarkup(trusted bool) Option {
	return func(m *Manager) {
		m.trusted = trusted
	}
}

// WithTriggerHeaders sets the response headers HandleAfterRequest reads
// trigger instructions from. Defaults to HX-Trigger.
func WithTriggerHeaders(names ...string) Option {
	return func(m *Manager) {
		if len(names) > 0 {
			m.headers = append([]string(nil), names...)
		}
	}
}

// WithIDGenerator replaces the id source for toast elements.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// Manager owns the toasts inside one container.
//
// Show, Toast.Dismiss, Active, Get and the toast state accessors may be
// called from any goroutine. DOM work is handed to the dispatcher. Dismiss
// must run on the loop when a dispatcher was given.
type Manager struct {
	container  *vdom.VNode
	dispatcher loop.Dispatcher
	serial     bool
	scheduler  Scheduler
	observer   Observer
	runtime    Initializer
	onChange   func()

	display time.Duration
	leave   time.Duration
	trusted bool
	headers []string
	newID   func() string

	// mu guards toasts, order and each toast's state. Writes happen on the
	// dispatcher; the lock is never held across callbacks.
	mu     sync.RWMutex
	toasts map[string]*Toast
	order  []*Toast
}

// New creates a Manager appending to container. A nil container turns every
// operation into a silent no-op.
func New(container *vdom.VNode, opts ...Option) *Manager {
	m := &Manager{
		container:  container,
		scheduler:  RealTime,
		observer:   nopObserver{},
		display:    DefaultDisplayDuration,
		leave:      DefaultLeaveDuration,
		headers:    []string{htmx.HeaderTrigger},
		newID:      func() string { return "toast-" + uuid.NewString() },
		toasts:     make(map[string]*Toast),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.dispatcher == nil {
		m.dispatcher = &loop.Serial{}
		m.serial = true
	}
	return m
}

// Container returns the container element, or nil.
func (m *Manager) Container() *vdom.VNode {
	return m.container
}

// Show displays a toast and schedules its removal. An empty type means
// success; unknown types are shown in the info style.
//
// It returns the toast handle, or nil when there is no container. The toast
// reaches the container once the dispatcher runs the attach step.
func (m *Manager) Show(message string, typ Type) *Toast {
	if m.container == nil {
		return nil
	}

	typ = typ.Normalize()
	t := &Toast{
		id:      m.newID(),
		message: message,
		typ:     typ,
		manager: m,
	}
	t.node = m.build(t)

	m.dispatcher.Dispatch(func() { m.attach(t) })
	return t
}

// Success shows a success toast.
//
//	toasts.Success("Changes saved!")
func (m *Manager) Success(message string) *Toast {
	return m.Show(message, TypeSuccess)
}

// Error shows an error toast.
//
//	toasts.Error("Failed to delete vehicle")
func (m *Manager) Error(message string) *Toast {
	return m.Show(message, TypeError)
}

// Info shows an info toast.
func (m *Manager) Info(message string) *Toast {
	return m.Show(message, TypeInfo)
}

// Dismiss starts the exit transition of the toast with the given element
// id. It reports false for unknown or already leaving toasts.
func (m *Manager) Dismiss(id string) bool {
	m.mu.RLock()
	t, ok := m.toasts[id]
	visible := ok && t.state == StateCreated
	m.mu.RUnlock()
	if !visible {
		return false
	}

	if m.serial {
		m.dispatcher.Dispatch(func() { m.beginDismiss(t, CauseManual) })
	} else {
		m.beginDismiss(t, CauseManual)
	}
	return true
}

// Get returns the live toast with the given element id.
func (m *Manager) Get(id string) *Toast {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.toasts[id]
}

// Active returns the attached toasts, oldest first.
func (m *Manager) Active() []*Toast {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Toast(nil), m.order...)
}

// attach appends the toast and arms its auto-dismiss timer.
func (m *Manager) attach(t *Toast) {
	if t.state != StatePending {
		return
	}

	m.container.AppendChild(t.node)
	t.node.SetAttr("data-visible", "true")

	m.mu.Lock()
	t.state = StateCreated
	m.toasts[t.id] = t
	m.order = append(m.order, t)
	m.mu.Unlock()

	if m.runtime != nil {
		m.runtime.InitTree(t.node)
	}
	m.observer.ToastShown(t.typ.Category())

	t.autoTimer = m.scheduler.AfterFunc(m.display, func() {
		m.dispatcher.Dispatch(func() { m.beginDismiss(t, CauseAuto) })
	})
	m.changed()
}

// beginDismiss moves a toast into Dismissing. It runs at most once per
// toast, whichever trigger comes first.
func (m *Manager) beginDismiss(t *Toast, cause DismissCause) {
	if t.state != StateCreated {
		return
	}
	m.mu.Lock()
	t.state = StateDismissing
	m.mu.Unlock()

	if cause == CauseManual && t.autoTimer != nil {
		t.autoTimer.Stop()
	}

	t.node.SetAttr("data-visible", "false")
	t.leaveTimer = m.scheduler.AfterFunc(m.leave, func() {
		m.dispatcher.Dispatch(func() { m.remove(t, cause) })
	})
	m.changed()
}

// remove detaches the toast.
func (m *Manager) remove(t *Toast, cause DismissCause) {
	if t.state != StateDismissing {
		return
	}
	t.node.Remove()

	m.mu.Lock()
	t.state = StateRemoved
	delete(m.toasts, t.id)
	for i, o := range m.order {
		if o == t {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.observer.ToastRemoved(cause)
	m.changed()
}

func (m *Manager) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}
