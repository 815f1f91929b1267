package hxglue

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fleetcore/hxglue/internal/errors"
	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/reactivity"
	"github.com/fleetcore/hxglue/pkg/render"
	"github.com/fleetcore/hxglue/pkg/toast"
	"github.com/fleetcore/hxglue/pkg/vdom"
	"github.com/fleetcore/hxglue/pkg/vtest"
)

func startHost(t *testing.T, cfg Config) *Host {
	t.Helper()
	h, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = h.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		h.Close()
	})
	return h
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func errorCode(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// upstream serves body with the given status and headers on every path.
func upstream(t *testing.T, status int, headers map[string]string, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRequestSwapsAndShowsToast(t *testing.T) {
	var gotHXRequest, gotTarget string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHXRequest = r.Header.Get(htmx.HeaderRequest)
		gotTarget = r.Header.Get(htmx.HeaderTarget)
		w.Header().Set(htmx.HeaderTrigger, `{"showToast":{"message":"Vehicle deleted","type":"success"}}`)
		_, _ = w.Write([]byte(`<ul id="vehicles"><li>Truck</li></ul>`))
	}))
	defer srv.Close()

	h := startHost(t, Config{BaseURL: srv.URL})
	ctx := testContext(t)

	ex, err := h.Request(ctx, http.MethodPost, "/vehicles/42/delete", nil, "app", "")
	if err != nil {
		t.Fatalf("Request() error: %v", err)
	}
	if !ex.Swapped || ex.Target != "app" || ex.Style != htmx.SwapInnerHTML {
		t.Errorf("exchange = %+v", ex)
	}
	if gotHXRequest != "true" || gotTarget != "app" {
		t.Errorf("upstream saw HX-Request=%q HX-Target=%q", gotHXRequest, gotTarget)
	}

	app, err := h.RenderElement(ctx, "app")
	if err != nil {
		t.Fatal(err)
	}
	if app != `<ul id="vehicles"><li>Truck</li></ul>` {
		t.Errorf("app = %q", app)
	}

	toasts, err := h.ActiveToasts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(toasts) != 1 || toasts[0].Message != "Vehicle deleted" || toasts[0].Type != toast.TypeSuccess {
		t.Fatalf("toasts = %+v", toasts)
	}

	container, err := h.RenderContainer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(container, "Vehicle deleted") || !strings.Contains(container, `data-visible="true"`) {
		t.Errorf("container = %q", container)
	}
}

func TestRequestErrorStatusShowsToastWithoutSwap(t *testing.T) {
	srv := upstream(t, http.StatusUnprocessableEntity,
		map[string]string{htmx.HeaderTrigger: `{"showToast":{"message":"Plate already registered","type":"error"}}`},
		`<p>should not appear</p>`)

	h := startHost(t, Config{BaseURL: srv.URL})
	ctx := testContext(t)

	ex, err := h.Request(ctx, http.MethodPost, "/vehicles", nil, "", "")
	if err != nil {
		t.Fatalf("Request() error: %v", err)
	}
	if ex.Swapped || ex.Status != http.StatusUnprocessableEntity {
		t.Errorf("exchange = %+v", ex)
	}

	app, _ := h.RenderElement(ctx, "app")
	if app != "" {
		t.Errorf("app = %q, want untouched", app)
	}
	toasts, _ := h.ActiveToasts(ctx)
	if len(toasts) != 1 || toasts[0].Type != toast.TypeError {
		t.Errorf("toasts = %+v", toasts)
	}
}

func TestRequestMalformedTriggerIsIgnored(t *testing.T) {
	srv := upstream(t, http.StatusOK, map[string]string{htmx.HeaderTrigger: "not json"}, `<p>ok</p>`)
	h := startHost(t, Config{BaseURL: srv.URL})
	ctx := testContext(t)

	if _, err := h.Request(ctx, http.MethodGet, "/", nil, "", ""); err != nil {
		t.Fatalf("Request() error: %v", err)
	}
	toasts, _ := h.ActiveToasts(ctx)
	if len(toasts) != 0 {
		t.Errorf("toasts = %+v, want none", toasts)
	}
}

func TestRequestRetargetAndReswap(t *testing.T) {
	srv := upstream(t, http.StatusOK, map[string]string{
		htmx.HeaderRetarget: "#app",
		htmx.HeaderReswap:   "beforeend",
	}, `<p>row</p>`)

	h := startHost(t, Config{BaseURL: srv.URL})
	ctx := testContext(t)

	for i := 0; i < 2; i++ {
		ex, err := h.Request(ctx, http.MethodGet, "/rows", nil, "somewhere-else", htmx.SwapInnerHTML)
		if err != nil {
			t.Fatalf("Request() error: %v", err)
		}
		if ex.Target != "app" || ex.Style != htmx.SwapBeforeEnd {
			t.Errorf("exchange = %+v", ex)
		}
	}

	app, _ := h.RenderElement(ctx, "app")
	if app != "<p>row</p><p>row</p>" {
		t.Errorf("app = %q", app)
	}
}

func TestRequestNoContent(t *testing.T) {
	srv := upstream(t, http.StatusNoContent, nil, "")
	h := startHost(t, Config{BaseURL: srv.URL})

	ex, err := h.Request(testContext(t), http.MethodDelete, "/x", nil, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if ex.Swapped {
		t.Error("204 should not swap")
	}
}

func TestRequestErrors(t *testing.T) {
	srv := upstream(t, http.StatusOK, nil, `<p>x</p>`)

	t.Run("missing target", func(t *testing.T) {
		h := startHost(t, Config{BaseURL: srv.URL})
		_, err := h.Request(testContext(t), http.MethodGet, "/", nil, "nope", "")
		if code := errorCode(err); code != errors.CodeTargetMissing {
			t.Errorf("code = %q (%v), want %s", code, err, errors.CodeTargetMissing)
		}
	})

	t.Run("relative url without base", func(t *testing.T) {
		h := startHost(t, Config{})
		_, err := h.Request(testContext(t), http.MethodGet, "/", nil, "", "")
		if code := errorCode(err); code != errors.CodeExchange {
			t.Errorf("code = %q (%v), want %s", code, err, errors.CodeExchange)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()

		h := startHost(t, Config{})
		_, err := h.Request(testContext(t), http.MethodGet, dead.URL, nil, "", "")
		if code := errorCode(err); code != errors.CodeExchange {
			t.Errorf("code = %q (%v), want %s", code, err, errors.CodeExchange)
		}
	})
}

func TestSwappedBindingsAreInitialised(t *testing.T) {
	srv := upstream(t, http.StatusOK, nil,
		`<div id="counter" v-hook='Counter:{"start":3}'></div><div id="plain"></div>`)

	h := startHost(t, Config{BaseURL: srv.URL})
	ctx := testContext(t)

	calls := 0
	h.Registry().Register("Counter", func(n *vdom.VNode, c reactivity.Config) {
		calls++
		n.SetAttr("data-count", c.Int("start"))
	})

	if _, err := h.Request(ctx, http.MethodGet, "/", nil, "", ""); err != nil {
		t.Fatal(err)
	}

	app, _ := h.RenderElement(ctx, "app")
	if !strings.Contains(app, `data-count="3"`) || !strings.Contains(app, `data-v-init="true"`) {
		t.Errorf("app = %q", app)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestToastLifecycle(t *testing.T) {
	clock := vtest.NewClock()
	h := startHost(t, Config{Scheduler: clock})
	ctx := testContext(t)

	tst := h.Toasts().Success("Saved")

	toasts, _ := h.ActiveToasts(ctx)
	if len(toasts) != 1 || toasts[0].State != "created" || toasts[0].ID != tst.ID() {
		t.Fatalf("toasts = %+v", toasts)
	}

	clock.Advance(toast.DefaultDisplayDuration)
	toasts, _ = h.ActiveToasts(ctx)
	if len(toasts) != 1 || toasts[0].State != "dismissing" {
		t.Fatalf("after display toasts = %+v", toasts)
	}

	clock.Advance(toast.DefaultLeaveDuration)
	toasts, _ = h.ActiveToasts(ctx)
	if len(toasts) != 0 {
		t.Fatalf("after leave toasts = %+v", toasts)
	}
	container, _ := h.RenderContainer(ctx)
	if container != "" {
		t.Errorf("container = %q", container)
	}
}

func TestDismiss(t *testing.T) {
	clock := vtest.NewClock()
	h := startHost(t, Config{Scheduler: clock})
	ctx := testContext(t)

	tst := h.Toasts().Error("Failed")

	ok, err := h.Dismiss(ctx, tst.ID())
	if err != nil || !ok {
		t.Fatalf("Dismiss() = %v, %v", ok, err)
	}
	ok, _ = h.Dismiss(ctx, tst.ID())
	if ok {
		t.Error("second Dismiss() should report false")
	}

	// Only the leave timer remains.
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}
}

func TestOnChange(t *testing.T) {
	var mu sync.Mutex
	var changed []string

	srv := upstream(t, http.StatusOK, nil, `<p>x</p>`)
	h := startHost(t, Config{
		BaseURL:   srv.URL,
		Scheduler: vtest.NewClock(),
		OnChange: func(el *vdom.VNode) {
			mu.Lock()
			defer mu.Unlock()
			changed = append(changed, el.ID())
		},
	})
	ctx := testContext(t)

	h.Toasts().Info("hello")
	if _, err := h.Request(ctx, http.MethodGet, "/", nil, "", ""); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if strings.Join(changed, ",") != "toast-container,app" {
		t.Errorf("changed = %v", changed)
	}
}

func TestRender(t *testing.T) {
	h := startHost(t, Config{})

	var b strings.Builder
	if err := h.Render(testContext(t), &b, render.PageData{Title: "Fleet"}); err != nil {
		t.Fatal(err)
	}
	html := b.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Fleet</title>",
		`<main id="app"></main>`,
		`id="toast-container"`,
		`aria-live="polite"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	h, err := New(Config{ContainerID: "notices", AppID: "main"})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	cfg := h.Config()
	if cfg.ContainerID != "notices" || cfg.AppID != "main" || cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Errorf("Config() = %+v", cfg)
	}
	if h.Toasts().Container().ID() != "notices" {
		t.Errorf("container id = %q", h.Toasts().Container().ID())
	}
}
