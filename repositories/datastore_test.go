package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rf-wms/models"
)

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	t.Run("missing key reads found=false", func(t *testing.T) {
		var bins []models.BinLocation
		found, err := store.Get(KeyBins, &bins)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		in := []models.BinLocation{{BinCode: "A-01-01", Zone: "Zone A", Capacity: 100, Status: "active"}}
		require.NoError(t, store.Set(KeyBins, in))

		var out []models.BinLocation
		found, err := store.Get(KeyBins, &out)
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, out, 1)
		assert.Equal(t, "A-01-01", out[0].BinCode)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		err := store.Set("random-key", []string{})
		assert.ErrorIs(t, err, ErrInvalidKey)

		var out any
		_, err = store.Get("random-key", &out)
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestIsValidKey(t *testing.T) {
	assert.True(t, IsValidKey(KeyActiveItems))
	assert.True(t, IsValidKey(KeyCycleCountTransactions))
	assert.False(t, IsValidKey("users"))
	assert.False(t, IsValidKey(""))
}

func TestTransactionRepository_AppendOnly(t *testing.T) {
	store := NewMemStore()
	repo := NewTransactionRepository(store)

	require.NoError(t, repo.AppendReceiving(models.ReceivingTransaction{ID: "1", PONumber: "PO-1", Qty: 5}))
	require.NoError(t, repo.AppendReceiving(models.ReceivingTransaction{ID: "2", PONumber: "PO-1", Qty: 3}))

	txns, err := repo.GetReceiving()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "1", txns[0].ID)
	assert.Equal(t, "2", txns[1].ID)
}

func TestTransactionRepository_SessionFilter(t *testing.T) {
	store := NewMemStore()
	repo := NewTransactionRepository(store)

	require.NoError(t, repo.AppendCycleCount(models.CycleCountTransaction{ID: "1", SessionID: "sess-a", Variance: -3}))
	require.NoError(t, repo.AppendCycleCount(models.CycleCountTransaction{ID: "2", SessionID: "sess-b"}))
	require.NoError(t, repo.AppendCycleCount(models.CycleCountTransaction{ID: "3", SessionID: "sess-a"}))

	filtered, err := repo.GetCycleCountBySession("sess-a")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
}

func TestInventoryRepository_BinItemLockSerializes(t *testing.T) {
	store := NewMemStore()
	repo := NewInventoryRepository(store)
	require.NoError(t, repo.SaveBins([]models.BinLocation{
		{BinCode: "A-01-01", Items: []models.BinItem{{ItemCode: "MOUSE-001", Quantity: 0}}},
	}))

	const workers = 20
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			done <- repo.WithBinItemLock("A-01-01", "MOUSE-001", func() error {
				bins, err := repo.GetBins()
				if err != nil {
					return err
				}
				bins[0].Items[0].Quantity++
				return repo.SaveBins(bins)
			})
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-done)
	}

	bins, err := repo.GetBins()
	require.NoError(t, err)
	assert.Equal(t, workers, bins[0].Items[0].Quantity)
}
