package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
	"rf-wms/services"
)

type ReceivingController struct {
	Deps *Deps
}

func NewReceivingController(deps *Deps) *ReceivingController {
	return &ReceivingController{Deps: deps}
}

var validate = validator.New()

func (c *ReceivingController) GetAllPurchaseOrders(ctx *fiber.Ctx) error {
	pos, err := c.Deps.Repo.GetPurchaseOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": pos})
}

func (c *ReceivingController) GetPurchaseOrderByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	pos, err := c.Deps.Repo.GetPurchaseOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i := range pos {
		if pos[i].ID == id || pos[i].PONumber == id {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": pos[i]})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Purchase order not found",
	})
}

// Receive memproses satu scan penerimaan.
func (c *ReceivingController) Receive(ctx *fiber.Ctx) error {
	var req services.ReceiveInput
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	// Validasi menggunakan validator
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	po, err := c.Deps.Receiving.Receive(req)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "RECEIVE",
		fmt.Sprintf("Received %d x %s into %s against %s", req.Qty, req.ItemCode, req.BinCode, po.PONumber))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": po})
}

// UploadPurchaseOrders menerima file CSV/XLSX berisi PO.
func (c *ReceivingController) UploadPurchaseOrders(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No file uploaded",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	var rows [][]string
	switch {
	case strings.HasSuffix(strings.ToLower(file.Filename), ".csv"):
		rows, err = services.ParseCSV(fileContent)
	case strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx"),
		strings.HasSuffix(strings.ToLower(file.Filename), ".xls"):
		rows, err = services.ParseExcel(fileContent)
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only CSV or Excel files are allowed",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	result, err := c.Deps.Imports.ImportPurchaseOrderRows(rows)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "IMPORT_PO",
		fmt.Sprintf("Imported %d PO rows from %s", result.SuccessCount, file.Filename))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

// GetReceivingTransactions mengembalikan log penerimaan.
func (c *ReceivingController) GetReceivingTransactions(ctx *fiber.Ctx) error {
	txns, err := c.Deps.Txns.GetReceiving()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": txns})
}
