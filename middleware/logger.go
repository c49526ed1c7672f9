package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID reuses a well-formed incoming X-Request-ID so a caller can
// correlate its own logs; anything else gets a fresh id
func requestID(c *fiber.Ctx) string {
	if id, err := uuid.Parse(c.Get(requestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// StructuredLogger tags each request with an X-Request-ID and logs its outcome
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := requestID(c)

		c.Locals("requestID", id)
		c.Set(requestIDHeader, id)

		err := c.Next()
		status := c.Response().StatusCode()

		attrs := []slog.Attr{
			slog.String("request_id", id),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("ip", c.IP()),
		}
		if recordID := c.Params("id"); recordID != "" {
			attrs = append(attrs, slog.String("record_id", recordID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		level, msg := outcome(status, err)
		logger.LogAttrs(c.Context(), level, msg, attrs...)

		return err
	}
}

func outcome(status int, err error) (slog.Level, string) {
	switch {
	case err != nil:
		return slog.LevelError, "request error"
	case status >= fiber.StatusInternalServerError:
		return slog.LevelError, "server error"
	case status >= fiber.StatusBadRequest:
		return slog.LevelWarn, "client error"
	default:
		return slog.LevelInfo, "request completed"
	}
}
