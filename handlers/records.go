package handlers

import (
	"registro/app"
	"registro/models"

	"github.com/gofiber/fiber/v2"
)

func recordID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// GetRecords reloads the record list and returns the view state
func GetRecords(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Records.Load(); err != nil {
			return serviceError(c, a.Logger, "Failed to load records", err)
		}
		return success(c, fiber.Map{"view": a.Records.Snapshot()})
	}
}

// CreateRecord adds a record
func CreateRecord(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateRecordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		record, err := a.Records.Add(req.Text)
		if err != nil && record.ID == 0 {
			return serviceError(c, a.Logger, "Failed to add record", err)
		}
		if err != nil {
			// Inserted but the list could not be reloaded
			a.Logger.Warn("record added but reload failed", "id", record.ID, "error", err)
		}

		return created(c, fiber.Map{
			"record": record,
			"view":   a.Records.Snapshot(),
		})
	}
}

// DeleteRecord removes a record by id
func DeleteRecord(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return badRequest(c, "Invalid record id")
		}

		if err := a.Records.Delete(id); err != nil {
			return serviceError(c, a.Logger, "Failed to delete record", err)
		}

		return success(c, fiber.Map{"view": a.Records.Snapshot()})
	}
}

// ClearRecords removes every record
func ClearRecords(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Records.ClearAll(); err != nil {
			return serviceError(c, a.Logger, "Failed to clear records", err)
		}

		return success(c, fiber.Map{"view": a.Records.Snapshot()})
	}
}

// StartEdit enters edit mode for a displayed record
func StartEdit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := recordID(c)
		if !ok {
			return badRequest(c, "Invalid record id")
		}

		buffer, err := a.Records.EnterEdit(id)
		if err != nil {
			return serviceError(c, a.Logger, "Failed to start edit", err)
		}

		return success(c, fiber.Map{
			"edit_buffer": buffer,
			"view":        a.Records.Snapshot(),
		})
	}
}

// SaveEdit replaces the edit buffer and saves the edited record
func SaveEdit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateRecordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Records.SaveText(req.Text); err != nil {
			return serviceError(c, a.Logger, "Failed to update record", err)
		}

		return success(c, fiber.Map{"view": a.Records.Snapshot()})
	}
}

// CancelEdit leaves edit mode without saving
func CancelEdit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Records.CancelEdit()
		return success(c, fiber.Map{"view": a.Records.Snapshot()})
	}
}
