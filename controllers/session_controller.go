package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
)

type SessionController struct {
	Deps *Deps
}

func NewSessionController(deps *Deps) *SessionController {
	return &SessionController{Deps: deps}
}

func (c *SessionController) GetAllSessions(ctx *fiber.Ctx) error {
	sessions, err := c.Deps.Sessions.GetSessions()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sessions})
}

// GetCurrentSession mengembalikan sesi yang sedang aktif.
func (c *SessionController) GetCurrentSession(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Sessions.CurrentSession()
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *SessionController) CreateSession(ctx *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&req); err != nil || req.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "name is required",
		})
	}

	sess, err := c.Deps.Sessions.CreateSession(req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "CREATE_SESSION",
		fmt.Sprintf("Started session %s", sess.Name))

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *SessionController) PauseSession(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Sessions.PauseSession(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *SessionController) ResumeSession(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Sessions.ResumeSession(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *SessionController) CompleteSession(ctx *fiber.Ctx) error {
	sess, err := c.Deps.Sessions.CompleteSession(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "COMPLETE_SESSION",
		fmt.Sprintf("Completed session %s", sess.Name))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sess})
}

func (c *SessionController) GetTemporaryLocations(ctx *fiber.Ctx) error {
	temps, err := c.Deps.Sessions.GetTemporaryLocations()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": temps})
}

func (c *SessionController) CreateTemporaryLocation(ctx *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := ctx.BodyParser(&req); err != nil || req.Title == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "title is required",
		})
	}

	temp, err := c.Deps.Sessions.CreateTemporaryLocation(req.Title, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": temp})
}

// MoveToTemp memindahkan stok terhitung dari bin ke lokasi sementara.
func (c *SessionController) MoveToTemp(ctx *fiber.Ctx) error {
	var req struct {
		FromBin  string `json:"from_bin"`
		ItemCode string `json:"item_code"`
		Qty      int    `json:"qty"`
		TempID   string `json:"temp_id"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	temp, err := c.Deps.Sessions.MoveToTemp(req.FromBin, req.ItemCode, req.Qty, req.TempID)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "MOVE_TO_TEMP",
		fmt.Sprintf("Moved %d x %s from %s to %s", req.Qty, req.ItemCode, req.FromBin, temp.Title))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": temp})
}

// PutAway mengembalikan stok dari lokasi sementara ke bin tujuan.
func (c *SessionController) PutAway(ctx *fiber.Ctx) error {
	var req struct {
		TempID   string `json:"temp_id"`
		ItemCode string `json:"item_code"`
		DestBin  string `json:"dest_bin"`
		Qty      int    `json:"qty"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	temp, err := c.Deps.Sessions.PutAway(req.TempID, req.ItemCode, req.DestBin, req.Qty)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "PUTAWAY",
		fmt.Sprintf("Put away %d x %s from %s to %s", req.Qty, req.ItemCode, temp.Title, req.DestBin))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": temp})
}
