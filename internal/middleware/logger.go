package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jiyul/junior-insight/internal/logger"
)

// RequestLogger logs one structured line per handled request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log := logger.Get()
		event := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("Request handled")

		return err
	}
}
