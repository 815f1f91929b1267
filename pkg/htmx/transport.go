package htmx

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for exchanges made through Transport.
const defaultTracerName = "hxglue/htmx"

// Transport is an http.RoundTripper that behaves like the browser library's
// request pipeline: it marks requests with HX-Request, traces each exchange,
// and emits a RequestEvent on the bus once the exchange completes.
//
//	client := &http.Client{Transport: htmx.NewTransport(bus)}
type Transport struct {
	// Base performs the actual exchange. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Bus receives a RequestEvent per exchange. May be nil.
	Bus *Bus

	// Tracer traces exchanges. Defaults to the global provider's tracer.
	Tracer trace.Tracer
}

// NewTransport creates a Transport emitting onto bus.
func NewTransport(bus *Bus) *Transport {
	return &Transport{Bus: bus}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	tracer := t.Tracer
	if tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}

	ctx, span := tracer.Start(req.Context(), "htmx "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	defer span.End()

	// RoundTrippers must not modify the caller's request.
	out := req.Clone(ctx)
	out.Header.Set(HeaderRequest, "true")

	resp, err := base.RoundTrip(out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
			attribute.Bool("htmx.trigger", resp.Header.Get(HeaderTrigger) != ""),
		)
		if resp.StatusCode >= 500 {
			span.SetStatus(codes.Error, resp.Status)
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}

	if t.Bus != nil {
		t.Bus.EmitAfterRequest(RequestEvent{Request: out, Response: resp, Err: err})
	}

	return resp, err
}
