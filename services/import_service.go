package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rf-wms/controllers/idgen"
	"rf-wms/models"
	"rf-wms/repositories"
)

// ImportService turns uploaded count sheets and PO files into aggregates.
// Column order is free: the header row is matched by name, unknown columns
// are ignored, and a missing required column fails the whole import before
// anything is written.
type ImportService struct {
	repo      *repositories.InventoryRepository
	receiving *ReceivingService
}

func NewImportService(repo *repositories.InventoryRepository, receiving *ReceivingService) *ImportService {
	return &ImportService{repo: repo, receiving: receiving}
}

type ImportResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// ParseCSV reads a whole CSV file into rows. Ragged rows are tolerated, the
// header check happens later.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// ParseExcel reads the first sheet of an xlsx file into rows.
func ParseExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// columnAliases maps alternate header spellings from host-system exports to
// the canonical column name.
var columnAliases = map[string]string{
	"bin":       "bincode",
	"location":  "bincode",
	"sku":       "itemcode",
	"material":  "itemcode",
	"itemname":  "description",
	"quantity":  "expectedqty",
	"qtyinbin":  "expectedqty",
	"onhandqty": "expectedqty",
	"counted":   "countedqty",
}

// headerIndex maps normalized column names to their position. Names are
// lowercased, spaces and underscores stripped, and aliases resolved, so
// "Bin Code", "bincode" and "Bin" all land on the same column.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, " ", "")
		key = strings.ReplaceAll(key, "_", "")
		if key == "" {
			continue
		}
		if canonical, ok := columnAliases[key]; ok {
			key = canonical
		}
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

func requireColumns(idx map[string]int, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return NewValidationError("columns", "missing required columns: "+strings.Join(missing, ", "))
	}
	return nil
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ImportInventory replaces the active item list from a count sheet. Required
// columns: BinCode, ItemCode, Description, ExpectedQty. A CountedQty column
// is optional; when absent for a row, a count already recorded for the same
// bin/item survives the re-import. Rows with unparseable quantities are
// skipped and reported, valid rows commit together.
func (s *ImportService) ImportInventory(rows [][]string) (*ImportResult, error) {
	if len(rows) < 2 {
		return nil, NewValidationError("file", "must contain a header and at least one data row")
	}

	idx := headerIndex(rows[0])
	if err := requireColumns(idx, "BinCode", "ItemCode", "Description", "ExpectedQty"); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetActiveItems()
	if err != nil {
		return nil, err
	}
	prevCounts := make(map[string]*int, len(existing))
	for _, item := range existing {
		if item.CountedQty != nil {
			prevCounts[countKey(item.BinCode, item.ItemCode)] = item.CountedQty
		}
	}

	result := &ImportResult{TotalRows: len(rows) - 1, ErrorMessages: []string{}}
	var items []models.Item

	for i, row := range rows[1:] {
		rowNum := i + 2

		binCode := strings.ToUpper(cell(row, idx, "BinCode"))
		itemCode := strings.ToUpper(cell(row, idx, "ItemCode"))
		if binCode == "" && itemCode == "" {
			result.SkippedCount++
			continue
		}
		if binCode == "" || itemCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: BinCode and ItemCode are required", rowNum))
			continue
		}

		expected, err := strconv.Atoi(cell(row, idx, "ExpectedQty"))
		if err != nil || expected < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: invalid ExpectedQty", rowNum))
			continue
		}

		item := models.Item{
			BinCode:     binCode,
			ItemCode:    itemCode,
			Description: cell(row, idx, "Description"),
			ExpectedQty: expected,
		}

		if raw := cell(row, idx, "CountedQty"); raw != "" {
			counted, err := strconv.Atoi(raw)
			if err != nil || counted < 0 {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: invalid CountedQty", rowNum))
				continue
			}
			variance := counted - expected
			item.CountedQty = &counted
			item.Variance = &variance
		} else if prev, ok := prevCounts[countKey(binCode, itemCode)]; ok {
			variance := *prev - expected
			item.CountedQty = prev
			item.Variance = &variance
		}

		items = append(items, item)
		result.SuccessCount++
	}

	if result.SuccessCount == 0 {
		return result, NewValidationError("file", "no valid rows found")
	}

	if err := s.repo.SaveActiveItems(items); err != nil {
		return nil, err
	}
	if err := s.repo.SaveMasterItems(items); err != nil {
		return nil, err
	}
	if err := s.rebuildBins(items); err != nil {
		return nil, err
	}
	return result, nil
}

// rebuildBins bootstraps the bin aggregate from an imported item list. Bins
// already known keep their zone and capacity; quantities come from the
// import.
func (s *ImportService) rebuildBins(items []models.Item) error {
	existing, err := s.repo.GetBins()
	if err != nil {
		return err
	}
	known := make(map[string]models.BinLocation, len(existing))
	for _, bin := range existing {
		known[bin.BinCode] = bin
	}

	grouped := make(map[string][]models.BinItem)
	var order []string
	for _, item := range items {
		if _, seen := grouped[item.BinCode]; !seen {
			order = append(order, item.BinCode)
		}
		qty := item.ExpectedQty
		if item.CountedQty != nil {
			qty = *item.CountedQty
		}
		grouped[item.BinCode] = append(grouped[item.BinCode], models.BinItem{
			ItemCode:    item.ItemCode,
			Description: item.Description,
			Quantity:    qty,
		})
	}

	bins := make([]models.BinLocation, 0, len(order))
	for _, code := range order {
		bin := models.BinLocation{
			BinCode:  code,
			Zone:     "Zone A - Storage",
			Capacity: 100,
			Status:   "active",
		}
		if prev, ok := known[code]; ok {
			bin.Zone = prev.Zone
			bin.Capacity = prev.Capacity
			bin.Status = prev.Status
		}
		bin.Items = grouped[code]
		bins = append(bins, bin)
	}
	return s.repo.SaveBins(bins)
}

// ImportPurchaseOrderRows builds purchase orders from a flat file, one row
// per line item, grouped by poNumber. Required columns: poNumber, vendor,
// expectedDate, ItemCode, Description, OrderedQty.
func (s *ImportService) ImportPurchaseOrderRows(rows [][]string) (*ImportResult, error) {
	if len(rows) < 2 {
		return nil, NewValidationError("file", "must contain a header and at least one data row")
	}

	idx := headerIndex(rows[0])
	if err := requireColumns(idx, "poNumber", "vendor", "expectedDate", "ItemCode", "Description", "OrderedQty"); err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(rows) - 1, ErrorMessages: []string{}}
	byPO := make(map[string]*models.PurchaseOrder)
	var order []string

	for i, row := range rows[1:] {
		rowNum := i + 2

		poNumber := strings.ToUpper(cell(row, idx, "poNumber"))
		itemCode := strings.ToUpper(cell(row, idx, "ItemCode"))
		if poNumber == "" && itemCode == "" {
			result.SkippedCount++
			continue
		}
		if poNumber == "" || itemCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: poNumber and ItemCode are required", rowNum))
			continue
		}

		ordered, err := strconv.Atoi(cell(row, idx, "OrderedQty"))
		if err != nil || ordered <= 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: invalid OrderedQty", rowNum))
			continue
		}

		po, ok := byPO[poNumber]
		if !ok {
			po = &models.PurchaseOrder{
				ID:           fmt.Sprintf("%d", idgen.GenerateID()),
				PONumber:     poNumber,
				Vendor:       cell(row, idx, "vendor"),
				CardCode:     cell(row, idx, "cardCode"),
				ExpectedDate: cell(row, idx, "expectedDate"),
				Status:       StatusPending,
			}
			byPO[poNumber] = po
			order = append(order, poNumber)
		}

		po.Items = append(po.Items, models.POItem{
			LineNumber:        len(po.Items) + 1,
			ItemCode:          itemCode,
			Description:       cell(row, idx, "Description"),
			OrderedQty:        ordered,
			RemainingQty:      ordered,
			BinCode:           strings.ToUpper(cell(row, idx, "BinCode")),
			RequiresLotSerial: parseBool(cell(row, idx, "RequiresLotSerial")),
		})
		result.SuccessCount++
	}

	if result.SuccessCount == 0 {
		return result, NewValidationError("file", "no valid rows found")
	}

	pos := make([]models.PurchaseOrder, 0, len(order))
	for _, poNumber := range order {
		pos = append(pos, *byPO[poNumber])
	}
	if err := s.receiving.ImportPurchaseOrders(pos); err != nil {
		return nil, err
	}
	return result, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func countKey(binCode, itemCode string) string {
	return binCode + "\x00" + itemCode
}
