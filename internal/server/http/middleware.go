package httpserver

import (
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// RequestLogger returns a middleware for structured request logging.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// no payloads, metadata only
		log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// Recover returns a middleware that recovers from handler panics.
func Recover(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Path()),
				)
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
			}
		}()
		return c.Next()
	}
}
