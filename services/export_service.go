package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"rf-wms/models"
	"rf-wms/repositories"
)

// ExportService writes the current count state back out as a file the office
// side can open: one row per bin/item with expected, counted and variance.
type ExportService struct {
	repo *repositories.InventoryRepository
}

func NewExportService(repo *repositories.InventoryRepository) *ExportService {
	return &ExportService{repo: repo}
}

var exportHeader = []string{"BinCode", "ItemCode", "Description", "ExpectedQty", "CountedQty", "Variance"}

func exportRow(item models.Item) []string {
	counted := ""
	variance := ""
	if item.CountedQty != nil {
		counted = strconv.Itoa(*item.CountedQty)
	}
	if item.Variance != nil {
		variance = strconv.Itoa(*item.Variance)
	}
	return []string{
		item.BinCode,
		item.ItemCode,
		item.Description,
		strconv.Itoa(item.ExpectedQty),
		counted,
		variance,
	}
}

func (s *ExportService) ExportInventoryCSV(w io.Writer) error {
	items, err := s.repo.GetActiveItems()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write(exportRow(item)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *ExportService) ExportInventoryExcel(w io.Writer) error {
	items, err := s.repo.GetActiveItems()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for i, item := range items {
		row := exportRow(item)
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("gagal generate Excel: %w", err)
	}
	return nil
}
