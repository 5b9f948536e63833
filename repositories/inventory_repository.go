package repositories

import (
	"sync"

	"rf-wms/models"
)

// InventoryRepository wraps the keyed store with typed per-aggregate access
// and owns the per-(bin,item) critical sections that keep concurrent
// scanners from driving a quantity negative.
type InventoryRepository struct {
	store Store

	mu       sync.Mutex
	binLocks map[string]*sync.Mutex
}

func NewInventoryRepository(store Store) *InventoryRepository {
	return &InventoryRepository{
		store:    store,
		binLocks: make(map[string]*sync.Mutex),
	}
}

// Store exposes the underlying keyed store for the generic data API.
func (r *InventoryRepository) Store() Store {
	return r.store
}

// WithBinItemLock serializes fn against every other mutation of the same
// (binCode, itemCode) pair. Every read-modify-write of a bin quantity goes
// through here.
func (r *InventoryRepository) WithBinItemLock(binCode, itemCode string, fn func() error) error {
	key := binCode + "\x00" + itemCode

	r.mu.Lock()
	lock, ok := r.binLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.binLocks[key] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (r *InventoryRepository) GetBins() ([]models.BinLocation, error) {
	var bins []models.BinLocation
	if _, err := r.store.Get(KeyBins, &bins); err != nil {
		return nil, err
	}
	return bins, nil
}

func (r *InventoryRepository) SaveBins(bins []models.BinLocation) error {
	return r.store.Set(KeyBins, bins)
}

func (r *InventoryRepository) GetActiveItems() ([]models.Item, error) {
	var items []models.Item
	if _, err := r.store.Get(KeyActiveItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) SaveActiveItems(items []models.Item) error {
	return r.store.Set(KeyActiveItems, items)
}

func (r *InventoryRepository) GetMasterItems() ([]models.Item, error) {
	var items []models.Item
	if _, err := r.store.Get(KeyMasterItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) SaveMasterItems(items []models.Item) error {
	return r.store.Set(KeyMasterItems, items)
}

func (r *InventoryRepository) GetPurchaseOrders() ([]models.PurchaseOrder, error) {
	var pos []models.PurchaseOrder
	if _, err := r.store.Get(KeyPurchaseOrders, &pos); err != nil {
		return nil, err
	}
	return pos, nil
}

func (r *InventoryRepository) SavePurchaseOrders(pos []models.PurchaseOrder) error {
	return r.store.Set(KeyPurchaseOrders, pos)
}

func (r *InventoryRepository) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := r.store.Get(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *InventoryRepository) SaveOrders(orders []models.Order) error {
	return r.store.Set(KeyOrders, orders)
}

func (r *InventoryRepository) GetSalesOrders() ([]models.SalesOrder, error) {
	var sos []models.SalesOrder
	if _, err := r.store.Get(KeySalesOrders, &sos); err != nil {
		return nil, err
	}
	return sos, nil
}

func (r *InventoryRepository) SaveSalesOrders(sos []models.SalesOrder) error {
	return r.store.Set(KeySalesOrders, sos)
}

func (r *InventoryRepository) GetWaves() ([]models.Wave, error) {
	var waves []models.Wave
	if _, err := r.store.Get(KeyWaves, &waves); err != nil {
		return nil, err
	}
	return waves, nil
}

func (r *InventoryRepository) SaveWaves(waves []models.Wave) error {
	return r.store.Set(KeyWaves, waves)
}

func (r *InventoryRepository) GetCycleCounts() ([]models.CycleCount, error) {
	var counts []models.CycleCount
	if _, err := r.store.Get(KeyCycleCounts, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *InventoryRepository) SaveCycleCounts(counts []models.CycleCount) error {
	return r.store.Set(KeyCycleCounts, counts)
}

func (r *InventoryRepository) GetSessions() ([]models.InventorySession, error) {
	var sessions []models.InventorySession
	if _, err := r.store.Get(KeyInventorySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *InventoryRepository) SaveSessions(sessions []models.InventorySession) error {
	return r.store.Set(KeyInventorySessions, sessions)
}

func (r *InventoryRepository) GetTemporaryLocations() ([]models.TemporaryLocation, error) {
	var temps []models.TemporaryLocation
	if _, err := r.store.Get(KeyTemporaryLocations, &temps); err != nil {
		return nil, err
	}
	return temps, nil
}

func (r *InventoryRepository) SaveTemporaryLocations(temps []models.TemporaryLocation) error {
	return r.store.Set(KeyTemporaryLocations, temps)
}
