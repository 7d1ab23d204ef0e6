package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetLoggerFromContext returns the request-scoped logger injected by
// TraceLoggerMiddleware, or a nop logger when the middleware did not run.
func GetLoggerFromContext(c *fiber.Ctx) *zap.Logger {
	loggerIf := c.Locals("logger")
	if loggerIf != nil {
		if logger, ok := loggerIf.(*zap.Logger); ok {
			return logger
		}
	}

	return zap.NewNop()
}
