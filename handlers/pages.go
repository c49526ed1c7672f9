package handlers

import (
	"registro/app"

	"github.com/gofiber/fiber/v2"
)

// SchedulePage renders the current schedule as an HTML document
func SchedulePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return a.Schedule.RenderHTML(c.Context(), c.Response().BodyWriter())
	}
}
