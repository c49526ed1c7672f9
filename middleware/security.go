package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Responses are JSON, PDF or the script-free schedule page.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":       "nosniff",
	"X-Frame-Options":              "DENY",
	"Referrer-Policy":              "no-referrer",
	"Cross-Origin-Opener-Policy":   "same-origin",
	"Cross-Origin-Resource-Policy": "same-origin",
	"Content-Security-Policy":      "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'",
}

// Security sets the response security headers. Schedule responses are never
// cached.
func Security() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for k, v := range securityHeaders {
			c.Set(k, v)
		}
		if strings.HasPrefix(c.Path(), "/schedule") || strings.HasPrefix(c.Path(), "/api/schedule") {
			c.Set(fiber.HeaderCacheControl, "no-store")
		}
		return c.Next()
	}
}
