package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type LookupController struct {
	Deps *Deps
}

func NewLookupController(deps *Deps) *LookupController {
	return &LookupController{Deps: deps}
}

// Resolve menerima kode hasil scan dan mengembalikan bin atau item.
func (c *LookupController) Resolve(ctx *fiber.Ctx) error {
	var req struct {
		Code string `json:"code"`
	}
	if err := ctx.BodyParser(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "code is required",
		})
	}

	bins, err := c.Deps.Repo.GetBins()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	items, err := c.Deps.Repo.GetActiveItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result := c.Deps.Lookup.Resolve(strings.TrimSpace(req.Code), bins, items)
	if result == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "No bin or item matches " + req.Code,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

// Search mencari item berdasarkan potongan kode atau deskripsi.
func (c *LookupController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if len(query) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "query must be at least 2 characters",
		})
	}

	items, err := c.Deps.Repo.GetActiveItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	matches := c.Deps.Lookup.SearchItems(query, items)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": matches})
}
