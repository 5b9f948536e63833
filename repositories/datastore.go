package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"rf-wms/models"

	"gorm.io/gorm"
)

// Datastore keys. Each key holds one JSON aggregate; any store that can get
// and set a blob by key can back the engine.
const (
	KeyActiveItems            = "active-items"
	KeyMasterItems            = "master-items"
	KeyBins                   = "bins"
	KeyPurchaseOrders         = "purchase-orders"
	KeyOrders                 = "orders"
	KeySalesOrders            = "sales-orders"
	KeyWaves                  = "waves"
	KeyCycleCounts            = "cycle-counts"
	KeyInventorySessions      = "inventory-sessions"
	KeyTemporaryLocations     = "temporary-locations"
	KeyReceivingTransactions  = "receiving-transactions"
	KeyCycleCountTransactions = "cycle-count-transactions"
	KeyTransferTransactions   = "transfer-transactions"
)

var validKeys = map[string]bool{
	KeyActiveItems:            true,
	KeyMasterItems:            true,
	KeyBins:                   true,
	KeyPurchaseOrders:         true,
	KeyOrders:                 true,
	KeySalesOrders:            true,
	KeyWaves:                  true,
	KeyCycleCounts:            true,
	KeyInventorySessions:      true,
	KeyTemporaryLocations:     true,
	KeyReceivingTransactions:  true,
	KeyCycleCountTransactions: true,
	KeyTransferTransactions:   true,
}

var ErrInvalidKey = errors.New("invalid data key")

// IsValidKey reports whether key names one of the persisted aggregates.
func IsValidKey(key string) bool {
	return validKeys[key]
}

// ValidKeys returns all aggregate keys in a stable order.
func ValidKeys() []string {
	return []string{
		KeyActiveItems,
		KeyMasterItems,
		KeyBins,
		KeyPurchaseOrders,
		KeyOrders,
		KeySalesOrders,
		KeyWaves,
		KeyCycleCounts,
		KeyInventorySessions,
		KeyTemporaryLocations,
		KeyReceivingTransactions,
		KeyCycleCountTransactions,
		KeyTransferTransactions,
	}
}

// Store is the durability substrate: get and set one JSON aggregate by key.
// found is false when the key has never been written.
type Store interface {
	Get(key string, out any) (found bool, err error)
	Set(key string, value any) error
}

// GormStore persists aggregates in the data_records table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db}
}

func (s *GormStore) Get(key string, out any) (bool, error) {
	if !validKeys[key] {
		return false, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	var record models.DataRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(record.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) Set(key string, value any) error {
	if !validKeys[key] {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	record := models.DataRecord{Key: key, Value: raw}
	return s.db.Save(&record).Error
}

// MemStore keeps aggregates in memory. Used by tests and by the processor
// dry-run mode.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(key string, out any) (bool, error) {
	if !validKeys[key] {
		return false, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemStore) Set(key string, value any) error {
	if !validKeys[key] {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
