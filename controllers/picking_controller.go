package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
)

type PickingController struct {
	Deps *Deps
}

func NewPickingController(deps *Deps) *PickingController {
	return &PickingController{Deps: deps}
}

func (c *PickingController) GetAllOrders(ctx *fiber.Ctx) error {
	orders, err := c.Deps.Repo.GetOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": orders})
}

func (c *PickingController) GetAllWaves(ctx *fiber.Ctx) error {
	waves, err := c.Deps.Repo.GetWaves()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": waves})
}

func (c *PickingController) GetAllSalesOrders(ctx *fiber.Ctx) error {
	sos, err := c.Deps.Repo.GetSalesOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sos})
}

// ActivateWave mengaktifkan wave dan mengembalikan pick list terurut.
func (c *PickingController) ActivateWave(ctx *fiber.Ctx) error {
	waveID := ctx.Params("id")

	tasks, err := c.Deps.Picking.ActivateWave(waveID)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": tasks})
}

// PickWaveItem mencatat satu pick final untuk baris order dalam wave.
func (c *PickingController) PickWaveItem(ctx *fiber.Ctx) error {
	var req struct {
		OrderID  string `json:"order_id"`
		ItemCode string `json:"item_code"`
		Qty      int    `json:"qty"`
	}
	if err := ctx.BodyParser(&req); err != nil || req.OrderID == "" || req.ItemCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "order_id and item_code are required",
		})
	}

	order, err := c.Deps.Picking.PickWaveItem(req.OrderID, req.ItemCode, req.Qty)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "PICK",
		fmt.Sprintf("Picked %d x %s for %s", req.Qty, req.ItemCode, order.OrderNumber))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": order})
}

// PickSalesOrderItem mencatat pick parsial untuk baris sales order.
func (c *PickingController) PickSalesOrderItem(ctx *fiber.Ctx) error {
	var req struct {
		SOID     string `json:"so_id"`
		ItemCode string `json:"item_code"`
		BinCode  string `json:"bin_code"`
		Qty      int    `json:"qty"`
	}
	if err := ctx.BodyParser(&req); err != nil || req.SOID == "" || req.ItemCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "so_id and item_code are required",
		})
	}

	so, err := c.Deps.Picking.PickSalesOrderItem(req.SOID, req.ItemCode, req.BinCode, req.Qty)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "PICK_SO",
		fmt.Sprintf("Picked %d x %s for %s", req.Qty, req.ItemCode, so.SONumber))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": so})
}

// ShipSalesOrder menutup sales order yang sudah selesai dipick.
func (c *PickingController) ShipSalesOrder(ctx *fiber.Ctx) error {
	soID := ctx.Params("id")

	so, err := c.Deps.Picking.ShipSalesOrder(soID)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "SHIP",
		"Shipped sales order "+so.SONumber)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": so})
}
