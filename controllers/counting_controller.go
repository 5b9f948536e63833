package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
	"rf-wms/services"
)

type CountingController struct {
	Deps *Deps
}

func NewCountingController(deps *Deps) *CountingController {
	return &CountingController{Deps: deps}
}

func (c *CountingController) GetAllCycleCounts(ctx *fiber.Ctx) error {
	counts, err := c.Deps.Repo.GetCycleCounts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": counts})
}

func (c *CountingController) CreateCycleCount(ctx *fiber.Ctx) error {
	var req struct {
		BinCode  string `json:"bin_code"`
		ItemCode string `json:"item_code"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	task, err := c.Deps.Counting.CreateCycleCount(req.BinCode, req.ItemCode)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": task})
}

// SubmitCount mencatat hasil hitung fisik untuk satu task.
func (c *CountingController) SubmitCount(ctx *fiber.Ctx) error {
	var req struct {
		TaskID     string `json:"task_id"`
		CountedQty int    `json:"counted_qty"`
		SessionID  string `json:"session_id"`
	}
	if err := ctx.BodyParser(&req); err != nil || req.TaskID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "task_id is required",
		})
	}

	task, err := c.Deps.Counting.SubmitCount(req.TaskID, req.CountedQty, req.SessionID)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "COUNT",
		fmt.Sprintf("Counted %d x %s in %s (variance %d)", req.CountedQty, task.ItemCode, task.BinCode, *task.Variance))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": task})
}

// StartSequentialCount membangun antrian hitung untuk rentang bin.
func (c *CountingController) StartSequentialCount(ctx *fiber.Ctx) error {
	var req struct {
		StartBin string `json:"start_bin"`
		EndBin   string `json:"end_bin"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	queue, err := c.Deps.Counting.StartSequentialCount(req.StartBin, req.EndBin)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": queue})
}

func (c *CountingController) SkipCurrent(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Counting.SkipCurrent(ctx.Params("sessionId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *CountingController) StepBack(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Counting.StepBack(ctx.Params("sessionId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

// ReconcileFullCount menerapkan hasil full count yang diimpor sekaligus.
func (c *CountingController) ReconcileFullCount(ctx *fiber.Ctx) error {
	var req struct {
		Rows []services.CountRow `json:"rows"`
	}
	if err := ctx.BodyParser(&req); err != nil || len(req.Rows) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "rows are required",
		})
	}

	created, err := c.Deps.Counting.ReconcileFullCount(req.Rows)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "FULL_COUNT",
		fmt.Sprintf("Reconciled %d count rows", len(created)))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": created})
}

// GetCycleCountTransactions mengembalikan log hitung, bisa difilter session.
func (c *CountingController) GetCycleCountTransactions(ctx *fiber.Ctx) error {
	if sessionID := ctx.Query("session_id"); sessionID != "" {
		txns, err := c.Deps.Counting.GetSessionTransactions(sessionID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
	}

	txns, err := c.Deps.Txns.GetCycleCount()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
}
