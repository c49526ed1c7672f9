package setup

import (
	"registro/app"
	"registro/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/schedule", handlers.SchedulePage(application))

	api := fiberApp.Group("/api")

	// Edit routes go first so "edit" is never taken as an :id
	api.Put("/records/edit", handlers.SaveEdit(application))
	api.Delete("/records/edit", handlers.CancelEdit(application))

	api.Get("/records", handlers.GetRecords(application))
	api.Post("/records", handlers.CreateRecord(application))
	api.Delete("/records", handlers.ClearRecords(application))
	api.Delete("/records/:id<int>", handlers.DeleteRecord(application))
	api.Post("/records/:id<int>/edit", handlers.StartEdit(application))

	api.Get("/schedule", handlers.GetSchedule(application))
	api.Post("/schedule", handlers.LoadSchedule(application))
	api.Get("/schedule/pdf", handlers.DownloadSchedulePDF(application))
	api.Post("/schedule/export", handlers.ExportSchedule(application))
}
