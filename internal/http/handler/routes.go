package handler

import (
	"github.com/gofiber/fiber/v2"

	"helloapi/internal/http/middleware"
	"helloapi/internal/service"
)

// Route names reported by middleware.RouteDiagnostics.
const (
	RouteProcess = "process"
	RouteGetName = "get_name"
	RouteRoot    = "root"
)

// RouteOptions tunes the public routes.
type RouteOptions struct {
	// QueryParam is the GET /get_name parameter: "name" (default) or "nome".
	QueryParam string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.TextService, opts RouteOptions) {
	app.Get("/healthz", LivenessProbe())

	app.Post("/process", middleware.Named(RouteProcess, ProcessText(svc)))
	app.Get("/get_name", middleware.Named(RouteGetName, GetName(svc, opts.QueryParam)))
	app.Get("/", middleware.Named(RouteRoot, Root(svc)))
}
