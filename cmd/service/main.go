// Package main is the entry point for the daily ritual service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients/acl"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/http"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/handlers"
	"github.com/asteria-rituals/daily-ritual/internal/app"
	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/platform/config"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
	"github.com/asteria-rituals/daily-ritual/internal/platform/telemetry"
	"github.com/asteria-rituals/daily-ritual/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env may carry CRAFT_API_* during development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// Noop when disabled.
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ritualMetrics, err := telemetry.NewRitualMetrics(registry, app.PublicationResults...)
	if err != nil {
		return fmt.Errorf("registering ritual metrics: %w", err)
	}

	weatherHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Weather.BaseURL,
		ServiceName: cfg.Services.Weather.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating weather client: %w", err)
	}

	// Craft URLs are read per request, so the client has no base URL.
	craftHTTP, err := clients.New(&clients.Config{
		ServiceName: acl.CraftServiceName,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating craft client: %w", err)
	}

	weatherClient := acl.NewWeatherClient(weatherHTTP, logger)
	craftClient := acl.NewCraftClient(craftHTTP, logger)
	settings := config.PublishingSource{}

	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{weatherClient, settings} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check %q: %w", checker.Name(), err)
		}
	}

	timezone, err := cfg.Ritual.Location()
	if err != nil {
		return fmt.Errorf("invalid ritual timezone: %w", err)
	}

	ritualService := app.NewRitualService(app.RitualServiceConfig{
		Weather:   weatherClient,
		Publisher: craftClient,
		Settings:  settings,
		Recorder:  ritualMetrics,
		Location: domain.Location{
			Name:      cfg.Weather.Place,
			Latitude:  cfg.Weather.Latitude,
			Longitude: cfg.Weather.Longitude,
		},
		Timezone:    timezone,
		ContainerID: cfg.Ritual.ContainerID,
		Logger:      logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(
		logger,
		cfg.Telemetry.ServiceName,
		handlers.NewHealthHandler(healthRegistry, buildInfo, registry),
		handlers.NewRitualHandler(ritualService),
	))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.ListenAndServe)

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("initiating graceful shutdown",
			slog.Duration("timeout", cfg.Server.ShutdownTimeout),
		)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
