package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each HTTP request as one JSON line with
// request_id, method, path, status and latency (milliseconds, float).
func Logger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := float64(time.Since(start).Microseconds()) / 1000
		logger.LogAttrs(c.UserContext(), slog.LevelInfo, "http_request",
			slog.String("request_id", RequestIDFromCtx(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusFor(c, err)),
			slog.Float64("latency", latency),
		)

		return err
	}
}
