package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rf-wms/controllers/helpers"
	"rf-wms/services"
)

type InventoryController struct {
	Deps *Deps
}

func NewInventoryController(deps *Deps) *InventoryController {
	return &InventoryController{Deps: deps}
}

func (c *InventoryController) GetActiveItems(ctx *fiber.Ctx) error {
	items, err := c.Deps.Repo.GetActiveItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

func (c *InventoryController) GetMasterItems(ctx *fiber.Ctx) error {
	items, err := c.Deps.Repo.GetMasterItems()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

// UploadInventory menerima file CSV/XLSX dan membangun ulang data inventory.
func (c *InventoryController) UploadInventory(ctx *fiber.Ctx) error {
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
			"error":   "Failed to read file: " + err.Error(),
		})
	}

	result, err := c.Deps.Imports.ImportInventory(rows)
	if err != nil {
		return respondError(ctx, err)
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "IMPORT_INVENTORY",
		fmt.Sprintf("Imported %s: %d rows, %d ok, %d errors", file.Filename, result.TotalRows, result.SuccessCount, result.ErrorCount))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Import finished",
		"data":    result,
	})
}

// ExportExcel menulis snapshot inventory sebagai file XLSX.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)

	if err := c.Deps.Exports.ExportInventoryExcel(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate Excel")
	}
	return nil
}

// ExportCSV menulis snapshot inventory sebagai file CSV.
func (c *InventoryController) ExportCSV(ctx *fiber.Ctx) error {
	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.csv"`)

	if err := c.Deps.Exports.ExportInventoryCSV(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate CSV")
	}
	return nil
}
