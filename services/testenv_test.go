package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rf-wms/models"
	"rf-wms/repositories"
)

// testEnv wires the full service stack against an in-memory store.
type testEnv struct {
	repo      *repositories.InventoryRepository
	bins      *BinService
	txns      *repositories.TransactionRepository
	receiving *ReceivingService
	picking   *PickingService
	counting  *CountingService
	sessions  *SessionService
	imports   *ImportService
	exports   *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := repositories.NewMemStore()
	repo := repositories.NewInventoryRepository(store)
	bins := NewBinService(repo)
	txns := repositories.NewTransactionRepository(store)
	receiving := NewReceivingService(repo, bins, txns)

	return &testEnv{
		repo:      repo,
		bins:      bins,
		txns:      txns,
		receiving: receiving,
		picking:   NewPickingService(repo, bins),
		counting:  NewCountingService(repo, bins, txns),
		sessions:  NewSessionService(repo, bins, txns),
		imports:   NewImportService(repo, receiving),
		exports:   NewExportService(repo),
	}
}

func (e *testEnv) seedBin(t *testing.T, binCode, itemCode string, qty int) {
	t.Helper()

	bins, err := e.repo.GetBins()
	require.NoError(t, err)

	for i := range bins {
		if bins[i].BinCode == binCode {
			bins[i].Items = append(bins[i].Items, models.BinItem{ItemCode: itemCode, Quantity: qty})
			require.NoError(t, e.repo.SaveBins(bins))
			return
		}
	}

	bins = append(bins, models.BinLocation{
		BinCode:  binCode,
		Zone:     "Zone A - Storage",
		Capacity: 100,
		Status:   "active",
		Items:    []models.BinItem{{ItemCode: itemCode, Quantity: qty}},
	})
	require.NoError(t, e.repo.SaveBins(bins))
}

func (e *testEnv) binQty(t *testing.T, binCode, itemCode string) int {
	t.Helper()

	qty, err := e.bins.GetBinQuantity(binCode, itemCode)
	require.NoError(t, err)
	return qty
}
