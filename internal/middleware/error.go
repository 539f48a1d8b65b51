package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jiyul/junior-insight/internal/logger"
)

// ErrorHandler is the central Fiber error handler; it logs and returns a
// consistent JSON body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
