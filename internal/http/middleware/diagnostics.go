package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// RouteNameLocalKey stores the name of the route that served the request.
const RouteNameLocalKey = "route_name"

// Named tags h so RouteDiagnostics can report which route served the request.
func Named(name string, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(RouteNameLocalKey, name)
		return h(c)
	}
}

// RouteDiagnostics emits a "route_invoked" line for every request served by a Named handler.
func RouteDiagnostics(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if name, ok := c.Locals(RouteNameLocalKey).(string); ok && name != "" {
			logger.InfoContext(c.UserContext(), "route_invoked",
				"route", name,
				"request_id", RequestIDFromCtx(c),
			)
		}
		return err
	}
}
