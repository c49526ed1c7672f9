package handlers

import (
	"errors"
	"log/slog"
	"registro/services"
	"registro/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	logger.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinel errors to responses. Anything else is
// a storage or upstream failure and is logged as a server error.
func serviceError(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyText):
		return badRequest(c, "Text must not be empty")
	case errors.Is(err, services.ErrRecordNotFound):
		return notFound(c, "Record not found")
	case errors.Is(err, services.ErrNotEditing):
		return conflict(c, "No record is being edited")
	case errors.Is(err, services.ErrEditInProgress):
		return conflict(c, "Finish or cancel the current edit first")
	case errors.Is(err, services.ErrMissingCredentials):
		return badRequest(c, "Control number and password are required")
	case errors.Is(err, services.ErrInvalidCredentials):
		return unauthorized(c, "Invalid credentials")
	default:
		return serverErrorWithDetails(c, logger, message, err)
	}
}
