package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rf-wms/services"
)

// respondError memetakan error service ke status HTTP.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case services.IsValidation(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrInsufficientStock), errors.Is(err, services.ErrLotMismatch):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrPreconditionFailed):
		status = fiber.StatusPreconditionFailed
	}
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
