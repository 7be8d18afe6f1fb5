package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/pkg/logger"
)

// RequestLogger registra una línea estructurada por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// el ErrorHandler fija el status final
			_ = c.App().Config().ErrorHandler(c, err)
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Int64("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}
