package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"helloapi/internal/config"
	"helloapi/internal/http/server"
	"helloapi/internal/logging"
	"helloapi/internal/otel"
	"helloapi/internal/service"
)

// @title Hello API
// @version 1.0
// @description String transformation demo service.
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.Log.Level, logging.Location(cfg.Log.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Error("tracing_init_failed", "error", err.Error())
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(server.Options{
		Config:   cfg,
		Logger:   logger,
		Service:  service.NewTextService(),
		Registry: reg,
	})
	if err != nil {
		logger.Error("server_init_failed", "error", err.Error())
		return err
	}

	// Bind all interfaces
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			"addr", addr,
			"query_param", cfg.QueryParam,
			"route_diagnostics", cfg.RouteDiagnostics,
			"metrics_enabled", cfg.MetricsEnabled,
		)
		errCh <- app.Listen(addr)
	}()

	var runErr error
	select {
	case runErr = <-errCh:
		if runErr != nil {
			logger.Error("server_failed", "error", runErr.Error())
		}
	case <-ctx.Done():
		logger.Info("server_stopping")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
		runErr = errors.Join(runErr, err)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing_shutdown_failed", "error", err.Error())
	}

	return runErr
}
