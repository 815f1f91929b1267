package hxglue

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/loop"
	"github.com/fleetcore/hxglue/pkg/reactivity"
	"github.com/fleetcore/hxglue/pkg/render"
	"github.com/fleetcore/hxglue/pkg/toast"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

const containerClasses = "fixed bottom-4 right-4 z-50 flex flex-col gap-2"

// Host owns one page: its tree, the event loop that mutates it, and the
// toast and reactivity wiring around partial updates.
//
// All tree access goes through the loop. Run must be running for any
// method taking a context to make progress.
type Host struct {
	cfg    Config
	logger *slog.Logger

	body      *vdom.VNode
	app       *vdom.VNode
	container *vdom.VNode

	loop     *loop.Loop
	bus      *htmx.Bus
	swapper  *htmx.Swapper
	toasts   *toast.Manager
	registry *reactivity.Registry
	client   *http.Client
	baseURL  *url.URL
	renderer *render.Renderer

	unsubscribe []func()
}

// New creates a Host.
//
// Example:
//
//	host, err := hxglue.New(hxglue.Config{BaseURL: "http://localhost:8080"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go host.Run(ctx)
//	host.Request(ctx, http.MethodPost, "/vehicles/42/delete", nil, "", "")
func New(cfg Config) (*Host, error) {
	cfg = cfg.withDefaults()

	h := &Host{
		cfg:      cfg,
		logger:   cfg.Logger.With("component", "host"),
		bus:      htmx.NewBus(),
		registry: reactivity.NewRegistry(),
		renderer: render.NewRenderer(render.RendererConfig{}),
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		h.baseURL = u
	}

	h.loop = loop.New(
		loop.WithQueueSize(cfg.QueueSize),
		loop.WithLogger(cfg.Logger.With("component", "loop")),
	)
	h.swapper = &htmx.Swapper{Bus: h.bus}

	h.app = vdom.Main(vdom.ID(cfg.AppID))
	h.container = vdom.Div(
		vdom.ID(cfg.ContainerID),
		vdom.Class(containerClasses),
		vdom.AttrOf("aria-live", "polite"),
	)
	h.body = vdom.Body(h.app, h.container)

	opts := []toast.Option{
		toast.WithDispatcher(h.loop),
		toast.WithRuntime(h.registry),
		toast.WithDurations(cfg.DisplayDuration, cfg.LeaveDuration),
		toast.WithTrustedMarkup(cfg.TrustedMarkup),
		toast.WithTriggerHeaders(cfg.TriggerHeaders...),
		toast.WithOnChange(func() { h.changed(h.container) }),
	}
	if cfg.Scheduler != nil {
		opts = append(opts, toast.WithScheduler(cfg.Scheduler))
	}
	if cfg.Observer != nil {
		opts = append(opts, toast.WithObserver(cfg.Observer))
	}
	h.toasts = toast.New(h.container, opts...)

	transport := htmx.NewTransport(h.bus)
	transport.Base = cfg.Transport
	transport.Tracer = cfg.Tracer
	h.client = &http.Client{Transport: transport, Timeout: cfg.Timeout}

	h.unsubscribe = append(h.unsubscribe,
		h.bus.OnAfterRequest(h.toasts.HandleAfterRequest),
		reactivity.Hook(h.bus, h.registry),
	)

	return h, nil
}

// Run processes loop work until ctx is cancelled or Close is called.
func (h *Host) Run(ctx context.Context) error {
	return h.loop.Run(ctx)
}

// Close detaches the bus subscriptions and stops the loop.
func (h *Host) Close() {
	for _, fn := range h.unsubscribe {
		fn()
	}
	h.unsubscribe = nil
	h.loop.Close()
}

// Toasts returns the toast manager.
func (h *Host) Toasts() *toast.Manager { return h.toasts }

// Registry returns the reactivity registry bound to swapped content.
func (h *Host) Registry() *reactivity.Registry { return h.registry }

// Bus returns the event bus.
func (h *Host) Bus() *htmx.Bus { return h.bus }

// Loop returns the event loop.
func (h *Host) Loop() *loop.Loop { return h.loop }

// Client returns the HTTP client used for exchanges.
func (h *Host) Client() *http.Client { return h.client }

// Config returns the effective configuration.
func (h *Host) Config() Config { return h.cfg }

// ToastInfo is a snapshot of one toast.
type ToastInfo struct {
	ID      string     `json:"id"`
	Message string     `json:"message"`
	Type    toast.Type `json:"type"`
	State   string     `json:"state"`
}

// ActiveToasts lists the attached toasts, oldest first.
func (h *Host) ActiveToasts(ctx context.Context) ([]ToastInfo, error) {
	var out []ToastInfo
	err := h.loop.Call(ctx, func() {
		for _, t := range h.toasts.Active() {
			out = append(out, ToastInfo{
				ID:      t.ID(),
				Message: t.Message(),
				Type:    t.Type(),
				State:   t.State().String(),
			})
		}
	})
	return out, err
}

// Dismiss starts the exit transition of the toast with the given id. It
// reports false when no visible toast has that id.
func (h *Host) Dismiss(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := h.loop.Call(ctx, func() {
		ok = h.toasts.Dismiss(id)
	})
	return ok, err
}

// Render writes the full page.
func (h *Host) Render(ctx context.Context, w io.Writer, page render.PageData) error {
	var b strings.Builder
	var rerr error
	err := h.loop.Call(ctx, func() {
		page.Body = h.body
		rerr = h.renderer.RenderPage(&b, page)
	})
	if err != nil {
		return err
	}
	if rerr != nil {
		return rerr
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// RenderContainer renders the toast container's content.
func (h *Host) RenderContainer(ctx context.Context) (string, error) {
	return h.RenderElement(ctx, h.cfg.ContainerID)
}

// RenderElement renders the content of the element with the given id.
func (h *Host) RenderElement(ctx context.Context, id string) (string, error) {
	var html string
	var rerr error
	err := h.loop.Call(ctx, func() {
		el := h.body.GetElementByID(id)
		if el == nil {
			rerr = targetMissing(id)
			return
		}
		html, rerr = h.renderer.RenderChildren(el)
	})
	if err != nil {
		return "", err
	}
	return html, rerr
}

func (h *Host) changed(el *vdom.VNode) {
	if h.cfg.OnChange != nil {
		h.cfg.OnChange(el)
	}
}
