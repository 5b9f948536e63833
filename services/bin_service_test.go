package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rf-wms/models"
)

func TestBinService_AdjustQuantity(t *testing.T) {
	env := newTestEnv(t)

	t.Run("positive delta creates bin and item", func(t *testing.T) {
		require.NoError(t, env.bins.AdjustQuantity("01-0002", "MOUSE-001", 10, QuantityOptions{Description: "Wireless Mouse"}))
		assert.Equal(t, 10, env.binQty(t, "01-0002", "MOUSE-001"))

		bins, err := env.repo.GetBins()
		require.NoError(t, err)
		require.Len(t, bins, 1)
		assert.Equal(t, "active", bins[0].Status)
	})

	t.Run("negative delta decrements", func(t *testing.T) {
		require.NoError(t, env.bins.AdjustQuantity("01-0002", "MOUSE-001", -4, QuantityOptions{}))
		assert.Equal(t, 6, env.binQty(t, "01-0002", "MOUSE-001"))
	})

	t.Run("delta below zero is rejected and nothing changes", func(t *testing.T) {
		err := env.bins.AdjustQuantity("01-0002", "MOUSE-001", -7, QuantityOptions{})
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 6, env.binQty(t, "01-0002", "MOUSE-001"))
	})

	t.Run("missing bin reads as zero", func(t *testing.T) {
		assert.Equal(t, 0, env.binQty(t, "01-9999", "MOUSE-001"))
	})
}

func TestBinService_SetQuantity(t *testing.T) {
	env := newTestEnv(t)
	env.seedBin(t, "01-0005", "KB-001", 45)

	t.Run("absolute overwrite", func(t *testing.T) {
		require.NoError(t, env.bins.SetQuantity("01-0005", "KB-001", 42, QuantityOptions{}))
		assert.Equal(t, 42, env.binQty(t, "01-0005", "KB-001"))
	})

	t.Run("zero is allowed", func(t *testing.T) {
		require.NoError(t, env.bins.SetQuantity("01-0005", "KB-001", 0, QuantityOptions{}))
		assert.Equal(t, 0, env.binQty(t, "01-0005", "KB-001"))
	})

	t.Run("negative is rejected", func(t *testing.T) {
		err := env.bins.SetQuantity("01-0005", "KB-001", -1, QuantityOptions{})
		assert.True(t, IsValidation(err))
	})
}

func TestValidateLotSerial(t *testing.T) {
	t.Run("lot totals must equal quantity", func(t *testing.T) {
		lots := []models.BinLot{{LotCode: "LOT-A", Qty: 3}, {LotCode: "LOT-B", Qty: 2}}
		assert.NoError(t, ValidateLotSerial(lots, nil, 5))
		assert.ErrorIs(t, ValidateLotSerial(lots, nil, 6), ErrLotMismatch)
	})

	t.Run("serial count must equal quantity", func(t *testing.T) {
		serials := []string{"SN1", "SN2", "SN3"}
		assert.NoError(t, ValidateLotSerial(nil, serials, 3))
		assert.ErrorIs(t, ValidateLotSerial(nil, serials, 2), ErrLotMismatch)
	})

	t.Run("no detail means no constraint", func(t *testing.T) {
		assert.NoError(t, ValidateLotSerial(nil, nil, 99))
	})
}

func TestBinService_LotInvariantMaintained(t *testing.T) {
	env := newTestEnv(t)

	lots := []models.BinLot{{LotCode: "LOT-A", Qty: 4}, {LotCode: "LOT-B", Qty: 6}}
	require.NoError(t, env.bins.AdjustQuantity("01-0010", "MED-001", 10, QuantityOptions{Lots: lots}))

	bins, err := env.repo.GetBins()
	require.NoError(t, err)
	require.Len(t, bins, 1)
	require.Len(t, bins[0].Items, 1)

	item := bins[0].Items[0]
	sum := 0
	for _, lot := range item.Lots {
		sum += lot.Qty
	}
	assert.Equal(t, item.Quantity, sum)
}
