package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"rf-wms/repositories"
)

// DataController memberi akses langsung ke aggregate JSON per key.
// Dipakai frontend untuk sinkronisasi penuh dan oleh admin untuk restore.
type DataController struct {
	Deps *Deps
}

func NewDataController(deps *Deps) *DataController {
	return &DataController{Deps: deps}
}

func (c *DataController) GetKeys(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": repositories.ValidKeys()})
}

func (c *DataController) GetByKey(ctx *fiber.Ctx) error {
	key := ctx.Params("key")
	if !repositories.IsValidKey(key) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "unknown data key: " + key,
		})
	}

	var raw json.RawMessage
	found, err := c.Deps.Repo.Store().Get(key, &raw)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		raw = json.RawMessage("[]")
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": raw})
}

func (c *DataController) SetByKey(ctx *fiber.Ctx) error {
	key := ctx.Params("key")
	if !repositories.IsValidKey(key) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "unknown data key: " + key,
		})
	}

	var raw json.RawMessage
	if err := json.Unmarshal(ctx.Body(), &raw); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "body must be valid JSON",
		})
	}

	if err := c.Deps.Repo.Store().Set(key, raw); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Data saved"})
}
