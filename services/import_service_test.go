package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_ImportInventory(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing required column fails the whole import", func(t *testing.T) {
		rows := [][]string{
			{"BinCode", "ItemCode", "ExpectedQty"}, // no Description
			{"A-01-01", "MOUSE-001", "45"},
		}
		_, err := env.imports.ImportInventory(rows)
		assert.True(t, IsValidation(err))

		items, err := env.repo.GetActiveItems()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("columns are matched by name in any order", func(t *testing.T) {
		rows := [][]string{
			{"Description", "ExpectedQty", "ItemCode", "BinCode", "Zone"},
			{"Wireless Mouse", "45", "mouse-001", "a-01-01", "A"},
			{"Keyboard", "10", "KB-001", "A-01-02", "A"},
		}
		result, err := env.imports.ImportInventory(rows)
		require.NoError(t, err)
		assert.Equal(t, 2, result.SuccessCount)
		assert.Equal(t, 0, result.ErrorCount)

		items, err := env.repo.GetActiveItems()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "MOUSE-001", items[0].ItemCode)
		assert.Equal(t, "A-01-01", items[0].BinCode)
		assert.Equal(t, 45, items[0].ExpectedQty)
	})

	t.Run("alias headers from host exports are accepted", func(t *testing.T) {
		env := newTestEnv(t)
		rows := [][]string{
			{"Bin", "SKU", "ItemName", "OnHandQty"},
			{"B-02-01", "CHG-010", "USB Charger", "12"},
		}
		result, err := env.imports.ImportInventory(rows)
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)

		items, err := env.repo.GetActiveItems()
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "CHG-010", items[0].ItemCode)
		assert.Equal(t, 12, items[0].ExpectedQty)
	})

	t.Run("bins are bootstrapped from the import", func(t *testing.T) {
		assert.Equal(t, 45, env.binQty(t, "A-01-01", "MOUSE-001"))
		assert.Equal(t, 10, env.binQty(t, "A-01-02", "KB-001"))
	})

	t.Run("bad rows are reported, good rows commit", func(t *testing.T) {
		rows := [][]string{
			{"BinCode", "ItemCode", "Description", "ExpectedQty"},
			{"A-01-01", "MOUSE-001", "Wireless Mouse", "45"},
			{"A-01-03", "", "no item code", "5"},
			{"A-01-04", "CABLE-42", "HDMI Cable", "not-a-number"},
		}
		result, err := env.imports.ImportInventory(rows)
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 2, result.ErrorCount)
		assert.Len(t, result.ErrorMessages, 2)
	})

	t.Run("recorded counts survive a re-import without a CountedQty column", func(t *testing.T) {
		items, err := env.repo.GetActiveItems()
		require.NoError(t, err)
		counted := 42
		items[0].CountedQty = &counted
		require.NoError(t, env.repo.SaveActiveItems(items))

		rows := [][]string{
			{"BinCode", "ItemCode", "Description", "ExpectedQty"},
			{"A-01-01", "MOUSE-001", "Wireless Mouse", "45"},
		}
		_, err = env.imports.ImportInventory(rows)
		require.NoError(t, err)

		items, err = env.repo.GetActiveItems()
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].CountedQty)
		assert.Equal(t, 42, *items[0].CountedQty)
		require.NotNil(t, items[0].Variance)
		assert.Equal(t, -3, *items[0].Variance)
	})
}

func TestImportService_ImportPurchaseOrderRows(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing required columns", func(t *testing.T) {
		rows := [][]string{
			{"poNumber", "ItemCode", "OrderedQty"},
			{"PO-1", "MOUSE-001", "50"},
		}
		_, err := env.imports.ImportPurchaseOrderRows(rows)
		assert.True(t, IsValidation(err))
	})

	t.Run("rows group by PO number", func(t *testing.T) {
		rows := [][]string{
			{"poNumber", "vendor", "expectedDate", "ItemCode", "Description", "OrderedQty"},
			{"PO-2026-001", "Acme", "2026-09-01", "MOUSE-001", "Wireless Mouse", "50"},
			{"PO-2026-001", "Acme", "2026-09-01", "KB-001", "Keyboard", "20"},
			{"PO-2026-002", "Globex", "2026-09-05", "CABLE-42", "HDMI Cable", "10"},
		}
		result, err := env.imports.ImportPurchaseOrderRows(rows)
		require.NoError(t, err)
		assert.Equal(t, 3, result.SuccessCount)

		pos, err := env.repo.GetPurchaseOrders()
		require.NoError(t, err)
		require.Len(t, pos, 2)
		assert.Len(t, pos[0].Items, 2)
		assert.Equal(t, StatusPending, pos[0].Status)
		assert.Equal(t, 50, pos[0].Items[0].RemainingQty)
		assert.Equal(t, "Globex", pos[1].Vendor)
	})
}

func TestParseCSV(t *testing.T) {
	input := "BinCode,ItemCode,Description,ExpectedQty\nA-01-01,MOUSE-001,Wireless Mouse,45\n"
	rows, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "MOUSE-001", rows[1][1])
}

func TestExportService_CSV(t *testing.T) {
	env := newTestEnv(t)

	rows := [][]string{
		{"BinCode", "ItemCode", "Description", "ExpectedQty", "CountedQty"},
		{"A-01-01", "MOUSE-001", "Wireless Mouse", "45", "42"},
	}
	_, err := env.imports.ImportInventory(rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.exports.ExportInventoryCSV(&buf))

	out, err := ParseCSV(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"BinCode", "ItemCode", "Description", "ExpectedQty", "CountedQty", "Variance"}, out[0])
	assert.Equal(t, []string{"A-01-01", "MOUSE-001", "Wireless Mouse", "45", "42", "-3"}, out[1])
}
