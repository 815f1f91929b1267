package config

import (
	"encoding/json"
	stderrors "errors"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fleetcore/hxglue/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hxglue.json"

	// EnvFileName is the optional dotenv file loaded next to it.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "HXGLUE_"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultContainerID is the id of the toast container element.
	DefaultContainerID = "toast-container"

	// DefaultTarget is the id of the element exchanges swap into by default.
	DefaultTarget = "app"

	// DefaultDisplayMs is how long a toast is shown before it leaves.
	DefaultDisplayMs = 4000

	// DefaultLeaveMs is the length of the toast exit transition.
	DefaultLeaveMs = 300

	// DefaultUpstreamTimeoutMs bounds one upstream exchange.
	DefaultUpstreamTimeoutMs = 10000

	// DefaultMetricsNamespace is the Prometheus namespace.
	DefaultMetricsNamespace = "hxglue"

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "hxglue"
)

// Config represents the complete hxglue.json configuration.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server" envPrefix:"SERVER_"`

	// Toast contains toast notification configuration.
	Toast ToastConfig `json:"toast" envPrefix:"TOAST_"`

	// Upstream contains the application server exchanges are sent to.
	Upstream UpstreamConfig `json:"upstream" envPrefix:"UPSTREAM_"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" envPrefix:"METRICS_"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing" envPrefix:"TRACING_"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" env:"HOST"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" env:"PORT"`

	// Live enables the websocket live preview.
	Live bool `json:"live,omitempty" env:"LIVE"`
}

// ToastConfig contains toast notification settings.
type ToastConfig struct {
	// ContainerID is the id of the element toasts are appended to.
	ContainerID string `json:"containerId,omitempty" env:"CONTAINER_ID"`

	// DisplayMs is how long a toast stays before it starts leaving.
	DisplayMs int `json:"displayMs,omitempty" env:"DISPLAY_MS"`

	// LeaveMs is the exit transition length.
	LeaveMs int `json:"leaveMs,omitempty" env:"LEAVE_MS"`

	// TrustedMarkup renders messages as markup instead of text.
	TrustedMarkup bool `json:"trustedMarkup,omitempty" env:"TRUSTED_MARKUP"`

	// TriggerHeaders are the response headers read for toast requests.
	TriggerHeaders []string `json:"triggerHeaders,omitempty" env:"TRIGGER_HEADERS" envSeparator:","`
}

// UpstreamConfig contains the upstream application server settings.
type UpstreamConfig struct {
	// URL is the base URL relative exchange paths resolve against.
	URL string `json:"url,omitempty" env:"URL"`

	// TimeoutMs bounds one exchange.
	TimeoutMs int `json:"timeoutMs,omitempty" env:"TIMEOUT_MS"`

	// Target is the default swap target id.
	Target string `json:"target,omitempty" env:"TARGET"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" env:"NAMESPACE"`

	// Disabled turns off the /metrics endpoint.
	Disabled bool `json:"disabled,omitempty" env:"DISABLED"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Name is the tracer name.
	Name string `json:"name,omitempty" env:"NAME"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory: hxglue.json if
// present, then HXGLUE_* environment variables, with an optional .env file
// filling in variables the environment does not set.
func Load(dir string) (*Config, error) {
	if err := loadDotenv(filepath.Join(dir, EnvFileName)); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(path)
	if err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Code != errors.CodeConfigRead || !stderrors.Is(e.Wrapped, os.ErrNotExist) {
			return nil, err
		}
		cfg = New()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path without
// environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New(errors.CodeConfigSyntax).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
			Wrap(err)

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntaxErr):
			e.WithOffset(path, data, syntaxErr.Offset)
		case stderrors.As(err, &typeErr):
			e.WithOffset(path, data, typeErr.Offset)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// ApplyEnv overrides fields from HXGLUE_* environment variables, for
// example HXGLUE_SERVER_PORT or HXGLUE_TOAST_DISPLAY_MS.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.New(errors.CodeInvalidEnv).Wrap(err)
	}
	return nil
}

func loadDotenv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New(errors.CodeInvalidEnv).
			WithDetail("Could not parse " + path).
			Wrap(err)
	}
	return nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	if c.Toast.ContainerID == "" {
		c.Toast.ContainerID = DefaultContainerID
	}
	if c.Toast.DisplayMs == 0 {
		c.Toast.DisplayMs = DefaultDisplayMs
	}
	if c.Toast.LeaveMs == 0 {
		c.Toast.LeaveMs = DefaultLeaveMs
	}

	if c.Upstream.TimeoutMs == 0 {
		c.Upstream.TimeoutMs = DefaultUpstreamTimeoutMs
	}
	if c.Upstream.Target == "" {
		c.Upstream.Target = DefaultTarget
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Tracing.Name == "" {
		c.Tracing.Name = DefaultTracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New(errors.CodeInvalidPort).
			WithSuggestion("Set server.port or HXGLUE_SERVER_PORT to a value like 8080").
			Wrap(stderrors.New("port " + strconv.Itoa(c.Server.Port) + " out of range"))
	}

	if c.Toast.DisplayMs < 0 || c.Toast.LeaveMs < 0 {
		return errors.New(errors.CodeInvalidDuration).
			WithDetail("toast.displayMs and toast.leaveMs must be positive.")
	}
	if c.Upstream.TimeoutMs < 0 {
		return errors.New(errors.CodeInvalidDuration).
			WithDetail("upstream.timeoutMs must be positive.")
	}

	for _, id := range []string{c.Toast.ContainerID, c.Upstream.Target} {
		if id == "" || strings.ContainsAny(id, " \t\r\n") {
			return errors.New(errors.CodeInvalidTarget).
				WithDetail("Element id " + strconv.Quote(id) + " is empty or contains whitespace.")
		}
	}

	if c.Upstream.URL != "" {
		u, err := url.Parse(c.Upstream.URL)
		if err != nil {
			return errors.New(errors.CodeInvalidUpstream).Wrap(err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(errors.CodeInvalidUpstream).
				WithSuggestion("Use a URL like http://localhost:8080")
		}
	}

	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the full URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// DisplayDuration returns the toast display duration.
func (c *Config) DisplayDuration() time.Duration {
	return time.Duration(c.Toast.DisplayMs) * time.Millisecond
}

// LeaveDuration returns the toast exit transition duration.
func (c *Config) LeaveDuration() time.Duration {
	return time.Duration(c.Toast.LeaveMs) * time.Millisecond
}

// UpstreamTimeout returns the exchange timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutMs) * time.Millisecond
}

// Exists reports whether dir holds a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
