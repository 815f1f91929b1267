package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fleetcore/hxglue/pkg/toast"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "hxglue").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "hxglue",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records toast activity and HTTP traffic. It implements
// toast.Observer.
//
// Metrics collected:
//   - hxglue_toasts_shown_total: Counter of toasts shown by category
//   - hxglue_toasts_removed_total: Counter of toasts removed by cause
//   - hxglue_toasts_active: Gauge of attached toasts
//   - hxglue_trigger_decodes_total: Counter of trigger headers by outcome
//   - hxglue_http_requests_total: Counter of requests by route and status
//   - hxglue_http_request_duration_seconds: Histogram of request duration
//   - hxglue_live_clients: Gauge of connected live preview clients
type Collector struct {
	toastsShown     *prometheus.CounterVec
	toastsRemoved   *prometheus.CounterVec
	toastsActive    prometheus.Gauge
	triggerDecodes  *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	liveClients     prometheus.Gauge
}

var _ toast.Observer = (*Collector)(nil)

// New creates a collector and registers its metrics.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(metrics.WithRegistry(reg))
//	toasts := toast.New(container, toast.WithObserver(m))
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		toastsRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed",
			ConstLabels: config.ConstLabels,
		}, []string{"cause"}),

		toastsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_active",
			Help:        "Number of toasts currently attached",
			ConstLabels: config.ConstLabels,
		}),

		triggerDecodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "trigger_decodes_total",
			Help:        "Total number of trigger header values inspected",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"method", "route"}),

		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_clients",
			Help:        "Number of connected live preview clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ToastShown implements toast.Observer.
func (c *Collector) ToastShown(category toast.Type) {
	c.toastsShown.WithLabelValues(string(category)).Inc()
	c.toastsActive.Inc()
}

// ToastRemoved implements toast.Observer.
func (c *Collector) ToastRemoved(cause toast.DismissCause) {
	c.toastsRemoved.WithLabelValues(string(cause)).Inc()
	c.toastsActive.Dec()
}

// TriggerDecoded implements toast.Observer.
func (c *Collector) TriggerDecoded(outcome toast.DecodeOutcome) {
	c.triggerDecodes.WithLabelValues(string(outcome)).Inc()
}

// LiveClientConnected records a live preview connection.
func (c *Collector) LiveClientConnected() {
	c.liveClients.Inc()
}

// LiveClientDisconnected records a closed live preview connection.
func (c *Collector) LiveClientDisconnected() {
	c.liveClients.Dec()
}

// Middleware records request count and duration per chi route pattern.
// Unmatched requests are labelled "unmatched" to bound cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
