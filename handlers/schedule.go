package handlers

import (
	"bytes"
	"registro/app"
	"registro/export"
	"registro/models"

	"github.com/gofiber/fiber/v2"
)

// LoadSchedule fetches the schedule for the posted credentials
func LoadSchedule(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoadScheduleRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		entries, err := a.Schedule.Load(req.ControlNumber, req.Password)
		if err != nil {
			return serviceError(c, a.Logger, "Failed to fetch schedule", err)
		}

		return success(c, fiber.Map{
			"entries": entries,
			"count":   len(entries),
		})
	}
}

// GetSchedule returns the last loaded schedule
func GetSchedule(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries := a.Schedule.Entries()
		return success(c, fiber.Map{
			"entries": entries,
			"count":   len(entries),
		})
	}
}

// DownloadSchedulePDF streams the current schedule as a PDF attachment
func DownloadSchedulePDF(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := a.Schedule.WritePDF(&buf); err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to generate PDF", err)
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Attachment(export.DefaultFileName)
		return c.Send(buf.Bytes())
	}
}

// ExportSchedule writes the current schedule to the export directory
func ExportSchedule(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := a.Schedule.Export()
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to export schedule", err)
		}

		return success(c, fiber.Map{"path": path})
	}
}
