package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
	"rf-wms/services"
)

type BinController struct {
	Deps *Deps
}

func NewBinController(deps *Deps) *BinController {
	return &BinController{Deps: deps}
}

func (c *BinController) GetAllBins(ctx *fiber.Ctx) error {
	bins, err := c.Deps.Repo.GetBins()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": bins})
}

func (c *BinController) GetBinByCode(ctx *fiber.Ctx) error {
	code := c.Deps.Lookup.NormalizeInput(ctx.Params("code"))

	bins, err := c.Deps.Repo.GetBins()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i := range bins {
		if strings.EqualFold(bins[i].BinCode, code) {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": bins[i]})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Bin not found",
	})
}

func (c *BinController) CreateBin(ctx *fiber.Ctx) error {
	var req struct {
		BinCode string `json:"bin_code"`
		Zone    string `json:"zone"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	bin, err := c.Deps.Bins.CreateBin(req.BinCode, req.Zone)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "CREATE_BIN", "Created bin "+bin.BinCode)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": bin})
}

type quantityRequest struct {
	BinCode  string `json:"bin_code"`
	ItemCode string `json:"item_code"`
	Qty      int    `json:"qty"`
}

// AdjustQuantity menambah atau mengurangi stok satu item dalam bin.
func (c *BinController) AdjustQuantity(ctx *fiber.Ctx) error {
	var req quantityRequest
	if err := ctx.BodyParser(&req); err != nil || req.BinCode == "" || req.ItemCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "bin_code and item_code are required",
		})
	}

	if err := c.Deps.Bins.AdjustQuantity(req.BinCode, req.ItemCode, req.Qty, services.QuantityOptions{}); err != nil {
		return respondError(ctx, err)
	}

	qty, err := c.Deps.Bins.GetBinQuantity(req.BinCode, req.ItemCode)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"quantity": qty}})
}

// SetQuantity menimpa stok dengan nilai absolut.
func (c *BinController) SetQuantity(ctx *fiber.Ctx) error {
	var req quantityRequest
	if err := ctx.BodyParser(&req); err != nil || req.BinCode == "" || req.ItemCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "bin_code and item_code are required",
		})
	}

	if err := c.Deps.Bins.SetQuantity(req.BinCode, req.ItemCode, req.Qty, services.QuantityOptions{}); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"quantity": req.Qty}})
}
