package controllers

import (
	"github.com/gofiber/fiber/v2"

	"rf-wms/models"
)

type TransactionController struct {
	Deps *Deps
}

func NewTransactionController(deps *Deps) *TransactionController {
	return &TransactionController{Deps: deps}
}

func (c *TransactionController) GetReceivingTransactions(ctx *fiber.Ctx) error {
	txns, err := c.Deps.Txns.GetReceiving()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
}

func (c *TransactionController) GetCycleCountTransactions(ctx *fiber.Ctx) error {
	var txns []models.CycleCountTransaction
	var err error
	if sessionID := ctx.Query("session_id"); sessionID != "" {
		txns, err = c.Deps.Txns.GetCycleCountBySession(sessionID)
	} else {
		txns, err = c.Deps.Txns.GetCycleCount()
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
}

func (c *TransactionController) GetTransferTransactions(ctx *fiber.Ctx) error {
	txns, err := c.Deps.Txns.GetTransfer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
}

// GetActivityLogs mengembalikan riwayat aktivitas user dari database.
func (c *TransactionController) GetActivityLogs(ctx *fiber.Ctx) error {
	var logs []models.ActivityLog
	if err := c.Deps.DB.Order("created_at desc").Limit(200).Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": logs})
}
