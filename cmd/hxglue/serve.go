package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/fleetcore/hxglue"
	"github.com/fleetcore/hxglue/internal/config"
	"github.com/fleetcore/hxglue/internal/live"
	"github.com/fleetcore/hxglue/internal/server"
	"github.com/fleetcore/hxglue/pkg/metrics"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		upstream string
		dir      string
		liveMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a page host",
		Long: `Serve a page host over HTTP.

Configuration is read from hxglue.json in the working directory, then
.env, then HXGLUE_* environment variables. Flags override all three.

Examples:
  hxglue serve
  hxglue serve --upstream=http://localhost:8080 --live
  hxglue serve --port=8081 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if upstream != "" {
				cfg.Upstream.URL = upstream
			}
			if liveMode {
				cfg.Server.Live = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cfg, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from hxglue.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from hxglue.json)")
	cmd.Flags().StringVarP(&upstream, "upstream", "u", "", "Upstream application URL")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory containing hxglue.json")
	cmd.Flags().BoolVar(&liveMode, "live", false, "Enable the live preview websocket")

	return cmd
}

func runServe(cfg *config.Config, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithRegistry(reg),
	)

	var hub *live.Hub
	var onChange func(*vdom.VNode)
	if cfg.Server.Live {
		hub = live.NewHub(
			live.WithLogger(logger.With("component", "live")),
			live.WithObserver(m),
		)
		onChange = server.Publisher(hub, logger)
	}

	h, err := hxglue.New(hxglue.Config{
		ContainerID:     cfg.Toast.ContainerID,
		AppID:           cfg.Upstream.Target,
		DisplayDuration: cfg.DisplayDuration(),
		LeaveDuration:   cfg.LeaveDuration(),
		TrustedMarkup:   cfg.Toast.TrustedMarkup,
		TriggerHeaders:  cfg.Toast.TriggerHeaders,
		BaseURL:         cfg.Upstream.URL,
		Timeout:         cfg.UpstreamTimeout(),
		Tracer:          otel.Tracer(cfg.Tracing.Name),
		Observer:        m,
		OnChange:        onChange,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	defer h.Close()

	opts := server.Options{
		Addr:   cfg.Address(),
		Title:  "hxglue",
		Host:   h,
		Hub:    hub,
		Logger: logger,
	}
	if !cfg.Metrics.Disabled {
		opts.Metrics = m
		opts.Gatherer = reg
	}
	srv := server.New(opts)

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Println("\n\n  Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		if err := h.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("host loop stopped", "error", err)
		}
	}()

	success("Listening on %s", cfg.URL())
	if cfg.Upstream.URL != "" {
		info("Upstream: %s", cfg.Upstream.URL)
	} else {
		warn("No upstream configured; exchanges need absolute URLs")
	}
	if hub != nil {
		info("Live preview: %s/live", cfg.URL())
	}
	if !cfg.Metrics.Disabled {
		info("Metrics: %s/metrics", cfg.URL())
	}
	fmt.Println()

	return srv.Start(ctx)
}
