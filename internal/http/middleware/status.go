package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor returns the status the client will see once the global error handler has run.
func statusFor(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
