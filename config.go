package hxglue

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/fleetcore/hxglue/pkg/toast"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

// Config configures a Host. The zero value is usable.
type Config struct {
	// ContainerID is the id of the toast container element.
	// Default: toast.ContainerID.
	ContainerID string

	// AppID is the id of the main content element.
	// Default: "app".
	AppID string

	// DisplayDuration and LeaveDuration override the toast timings.
	DisplayDuration time.Duration
	LeaveDuration   time.Duration

	// TrustedMarkup renders toast messages as markup.
	// SECURITY: only enable when every toast source is trusted.
	TrustedMarkup bool

	// TriggerHeaders are the response headers read for toast requests.
	// Default: HX-Trigger.
	TriggerHeaders []string

	// BaseURL resolves relative exchange URLs.
	BaseURL string

	// Timeout bounds one exchange. Zero means no timeout.
	Timeout time.Duration

	// MaxBodyBytes caps the response body read per exchange.
	// Default: 10 MiB.
	MaxBodyBytes int64

	// QueueSize is the event loop queue size.
	QueueSize int

	// Transport performs exchanges. Default: http.DefaultTransport.
	Transport http.RoundTripper

	// Tracer traces exchanges. Default: the global provider's tracer.
	Tracer trace.Tracer

	// Scheduler drives toast timers. Default: toast.RealTime.
	Scheduler toast.Scheduler

	// Observer receives toast activity. May be nil.
	Observer toast.Observer

	// OnChange is called on the loop with the element whose content just
	// changed: the toast container or a swap target.
	OnChange func(changed *vdom.VNode)

	// Logger is the structured logger for the host.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

const (
	defaultAppID        = "app"
	defaultMaxBodyBytes = 10 << 20
)

func (c Config) withDefaults() Config {
	if c.ContainerID == "" {
		c.ContainerID = toast.ContainerID
	}
	if c.AppID == "" {
		c.AppID = defaultAppID
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
