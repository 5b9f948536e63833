package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rf-wms/models"
)

func seedPO(t *testing.T, env *testEnv, po models.PurchaseOrder) {
	t.Helper()

	pos, err := env.repo.GetPurchaseOrders()
	require.NoError(t, err)
	pos = append(pos, po)
	require.NoError(t, env.repo.SavePurchaseOrders(pos))
}

func TestReceivingService_Receive(t *testing.T) {
	env := newTestEnv(t)
	seedPO(t, env, models.PurchaseOrder{
		ID:       "po-1",
		PONumber: "PO-2026-001",
		Vendor:   "Acme Supplies",
		Status:   StatusPending,
		Items: []models.POItem{
			{ItemCode: "MOUSE-001", Description: "Wireless Mouse", OrderedQty: 50, RemainingQty: 50},
			{ItemCode: "KB-001", Description: "Keyboard", OrderedQty: 20, RemainingQty: 20},
		},
	})

	t.Run("full receive completes the line and fills the bin", func(t *testing.T) {
		po, err := env.receiving.Receive(ReceiveInput{
			POID: "po-1", ItemCode: "MOUSE-001", Qty: 50, BinCode: "B-02-01",
		})
		require.NoError(t, err)

		assert.Equal(t, 50, po.Items[0].ReceivedQty)
		assert.Equal(t, 0, po.Items[0].RemainingQty)
		assert.Equal(t, StatusReceiving, po.Status)
		assert.Equal(t, 50, env.binQty(t, "B-02-01", "MOUSE-001"))

		txns, err := env.txns.GetReceiving()
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "PO-2026-001", txns[0].PONumber)
		assert.Equal(t, 50, txns[0].Qty)
	})

	t.Run("receiving the last line completes the PO", func(t *testing.T) {
		po, err := env.receiving.Receive(ReceiveInput{
			POID: "PO-2026-001", ItemCode: "KB-001", Qty: 20, BinCode: "B-02-02",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, po.Status)
		assert.NotEmpty(t, po.ReceivedDate)
	})

	t.Run("completed status never regresses", func(t *testing.T) {
		po, err := env.receiving.Receive(ReceiveInput{
			POID: "po-1", ItemCode: "MOUSE-001", Qty: 5, BinCode: "B-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, po.Status)
	})
}

func TestReceivingService_Validation(t *testing.T) {
	env := newTestEnv(t)
	seedPO(t, env, models.PurchaseOrder{
		ID:       "po-2",
		PONumber: "PO-2026-002",
		Status:   StatusPending,
		Items: []models.POItem{
			{ItemCode: "MED-001", Description: "Lot tracked item", OrderedQty: 10, RemainingQty: 10, RequiresLotSerial: true},
		},
	})

	t.Run("zero qty is rejected before mutation", func(t *testing.T) {
		_, err := env.receiving.Receive(ReceiveInput{POID: "po-2", ItemCode: "MED-001", Qty: 0, BinCode: "B-01-01"})
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown PO", func(t *testing.T) {
		_, err := env.receiving.Receive(ReceiveInput{POID: "nope", ItemCode: "MED-001", Qty: 1, BinCode: "B-01-01"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown line on known PO", func(t *testing.T) {
		_, err := env.receiving.Receive(ReceiveInput{POID: "po-2", ItemCode: "GHOST", Qty: 1, BinCode: "B-01-01"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lot tracked line demands capture", func(t *testing.T) {
		_, err := env.receiving.Receive(ReceiveInput{POID: "po-2", ItemCode: "MED-001", Qty: 5, BinCode: "B-01-01"})
		assert.True(t, IsValidation(err))
	})

	t.Run("lot totals must reconcile, bin untouched on failure", func(t *testing.T) {
		_, err := env.receiving.Receive(ReceiveInput{
			POID: "po-2", ItemCode: "MED-001", Qty: 5, BinCode: "B-01-01",
			Lots: []models.POLot{{LotCode: "LOT-A", Qty: 3}},
		})
		assert.ErrorIs(t, err, ErrLotMismatch)
		assert.Equal(t, 0, env.binQty(t, "B-01-01", "MED-001"))
	})

	t.Run("reconciling lots pass", func(t *testing.T) {
		po, err := env.receiving.Receive(ReceiveInput{
			POID: "po-2", ItemCode: "MED-001", Qty: 5, BinCode: "B-01-01",
			Lots: []models.POLot{{LotCode: "LOT-A", Qty: 3}, {LotCode: "LOT-B", Qty: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, po.Items[0].ReceivedQty)
		assert.Equal(t, 5, env.binQty(t, "B-01-01", "MED-001"))
	})
}
