// Package server assembles the Fiber application: middleware chain, public routes,
// API docs and the metrics endpoint.
package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"

	"helloapi/docs"
	"helloapi/internal/config"
	"helloapi/internal/http/handler"
	"helloapi/internal/http/middleware"
	"helloapi/internal/service"
)

// Options are the dependencies needed to build the app.
type Options struct {
	Config  *config.AppConfig
	Logger  *slog.Logger
	Service service.TextService
	// Registry receives the HTTP metrics and backs /metrics.
	// Required when Config.MetricsEnabled is set.
	Registry *prometheus.Registry
}

// New builds the Fiber app. It does not start listening.
func New(opts Options) (*fiber.App, error) {
	if opts.Config == nil || opts.Logger == nil || opts.Service == nil {
		return nil, errors.New("server: config, logger and service are required")
	}
	cfg := opts.Config

	app := fiber.New(fiber.Config{
		AppName:               "helloapi",
		ErrorHandler:          handler.ErrorHandler(opts.Logger),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(opts.Logger))

	if cfg.MetricsEnabled {
		if opts.Registry == nil {
			return nil, errors.New("server: metrics enabled without a registry")
		}
		prom, err := middleware.NewPrometheusMiddleware(opts.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		app.Get(middleware.MetricsPath, middleware.MetricsHandler(opts.Registry))
	}

	if cfg.RouteDiagnostics {
		app.Use(middleware.RouteDiagnostics(opts.Logger))
	}

	handler.RegisterRoutes(app, opts.Service, handler.RouteOptions{QueryParam: cfg.QueryParam})

	// Doc info is global to the swag registry; it is written here once, never per request.
	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.Schemes = []string{}
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
