package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rf-wms/models"
	"rf-wms/repositories"
)

// PickingService runs both picking variants. Wave orders record one terminal
// picked quantity per line; sales orders accept repeated partial picks until
// nothing remains. The asymmetry mirrors the two upstream systems and is
// kept on purpose. Every path validates stock and rejects before mutating;
// no path clamps a short pick to zero.
type PickingService struct {
	repo *repositories.InventoryRepository
	bins *BinService
}

func NewPickingService(repo *repositories.InventoryRepository, bins *BinService) *PickingService {
	return &PickingService{repo: repo, bins: bins}
}

// PickTask is one stop on a wave pick run.
type PickTask struct {
	OrderID     string           `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	Item        models.OrderItem `json:"item"`
}

// ActivateWave marks the wave active and returns its pick list, every line
// of every order in the wave sorted by bin code for one walk through the
// aisles.
func (s *PickingService) ActivateWave(waveID string) ([]PickTask, error) {
	waves, err := s.repo.GetWaves()
	if err != nil {
		return nil, err
	}

	waveIdx := -1
	for i := range waves {
		if waves[i].ID == waveID {
			waveIdx = i
			break
		}
	}
	if waveIdx < 0 {
		return nil, fmt.Errorf("%w: wave %s", ErrNotFound, waveID)
	}
	wave := &waves[waveIdx]

	orders, err := s.repo.GetOrders()
	if err != nil {
		return nil, err
	}

	inWave := make(map[string]bool, len(wave.Orders))
	for _, id := range wave.Orders {
		inWave[id] = true
	}

	var tasks []PickTask
	for _, order := range orders {
		if !inWave[order.ID] {
			continue
		}
		for _, item := range order.Items {
			tasks = append(tasks, PickTask{
				OrderID:     order.ID,
				OrderNumber: order.OrderNumber,
				Item:        item,
			})
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Item.BinCode < tasks[j].Item.BinCode
	})

	if wave.Status == StatusPending {
		wave.Status = StatusActive
		if err := s.repo.SaveWaves(waves); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// PickWaveItem records the terminal picked quantity for one order line and
// pulls the stock from the line's bin. A line can be picked once; the wave
// completes when every order in it derives picked.
func (s *PickingService) PickWaveItem(orderID, itemCode string, qty int) (*models.Order, error) {
	if qty <= 0 {
		return nil, NewValidationError("qty", "must be greater than 0")
	}

	orders, err := s.repo.GetOrders()
	if err != nil {
		return nil, err
	}

	orderIdx := -1
	for i := range orders {
		if orders[i].ID == orderID || orders[i].OrderNumber == orderID {
			orderIdx = i
			break
		}
	}
	if orderIdx < 0 {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	order := &orders[orderIdx]

	itemIdx := -1
	for i := range order.Items {
		if strings.EqualFold(order.Items[i].ItemCode, itemCode) {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: item %s on order %s", ErrNotFound, itemCode, order.OrderNumber)
	}
	line := &order.Items[itemIdx]

	if line.PickedQty > 0 {
		return nil, NewValidationError("item", "line already picked")
	}
	if qty > line.OrderedQty {
		return nil, NewValidationError("qty", "exceeds ordered quantity")
	}

	// Reject-first: the decrement below would also catch a shortfall, but
	// checking here keeps the order untouched on failure.
	onHand, err := s.bins.GetBinQuantity(line.BinCode, line.ItemCode)
	if err != nil {
		return nil, err
	}
	if onHand < qty {
		return nil, fmt.Errorf("%w: bin %s item %s has %d, need %d",
			ErrInsufficientStock, line.BinCode, line.ItemCode, onHand, qty)
	}

	if err := s.bins.AdjustQuantity(line.BinCode, line.ItemCode, -qty, QuantityOptions{}); err != nil {
		return nil, err
	}

	line.PickedQty = qty
	order.Status = DeriveOrderStatus(order.Items, order.Status)

	if err := s.repo.SaveOrders(orders); err != nil {
		return nil, err
	}

	if order.WaveID != "" {
		if err := s.refreshWaveStatus(order.WaveID, orders); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (s *PickingService) refreshWaveStatus(waveID string, orders []models.Order) error {
	waves, err := s.repo.GetWaves()
	if err != nil {
		return err
	}

	for i := range waves {
		if waves[i].ID != waveID {
			continue
		}

		inWave := make(map[string]bool, len(waves[i].Orders))
		for _, id := range waves[i].Orders {
			inWave[id] = true
		}
		var waveOrders []models.Order
		for _, order := range orders {
			if inWave[order.ID] {
				waveOrders = append(waveOrders, order)
			}
		}

		prev := waves[i].Status
		waves[i].Status = DeriveWaveStatus(waveOrders, waves[i].Status)
		if waves[i].Status == StatusCompleted && prev != StatusCompleted {
			waves[i].CompletedDate = time.Now().Format(time.RFC3339)
		}
		return s.repo.SaveWaves(waves)
	}
	return nil
}

// PickSalesOrderItem books a partial pick against a sales order line:
// DeliveredQty grows, RemainingQty shrinks, repeat until zero. binCode
// overrides the line's suggested bin when the stock was pulled elsewhere.
func (s *PickingService) PickSalesOrderItem(soID, itemCode, binCode string, qty int) (*models.SalesOrder, error) {
	if qty <= 0 {
		return nil, NewValidationError("qty", "must be greater than 0")
	}

	sos, err := s.repo.GetSalesOrders()
	if err != nil {
		return nil, err
	}

	soIdx := -1
	for i := range sos {
		if sos[i].ID == soID || sos[i].SONumber == soID {
			soIdx = i
			break
		}
	}
	if soIdx < 0 {
		return nil, fmt.Errorf("%w: sales order %s", ErrNotFound, soID)
	}
	so := &sos[soIdx]

	itemIdx := -1
	for i := range so.Items {
		if strings.EqualFold(so.Items[i].ItemCode, itemCode) {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: item %s on SO %s", ErrNotFound, itemCode, so.SONumber)
	}
	line := &so.Items[itemIdx]

	if qty > line.RemainingQty {
		return nil, NewValidationError("qty", fmt.Sprintf("exceeds remaining quantity %d", line.RemainingQty))
	}

	if binCode == "" {
		binCode = line.BinCode
	}
	if binCode == "" {
		return nil, NewValidationError("bin_code", "is required when the line has no suggested bin")
	}

	onHand, err := s.bins.GetBinQuantity(binCode, line.ItemCode)
	if err != nil {
		return nil, err
	}
	if onHand < qty {
		return nil, fmt.Errorf("%w: bin %s item %s has %d, need %d",
			ErrInsufficientStock, binCode, line.ItemCode, onHand, qty)
	}

	if err := s.bins.AdjustQuantity(binCode, line.ItemCode, -qty, QuantityOptions{}); err != nil {
		return nil, err
	}

	line.DeliveredQty += qty
	line.RemainingQty = line.OrderedQty - line.DeliveredQty
	so.Status = DeriveSalesOrderStatus(so.Items, so.Status)

	if err := s.repo.SaveSalesOrders(sos); err != nil {
		return nil, err
	}
	return so, nil
}

// ShipSalesOrder closes out a fully picked sales order. Shipping an order
// that isn't picked yet is a precondition failure, and shipped is terminal.
func (s *PickingService) ShipSalesOrder(soID string) (*models.SalesOrder, error) {
	sos, err := s.repo.GetSalesOrders()
	if err != nil {
		return nil, err
	}

	for i := range sos {
		if sos[i].ID != soID && sos[i].SONumber != soID {
			continue
		}
		if sos[i].Status == StatusShipped {
			return &sos[i], nil
		}
		if sos[i].Status != StatusPicked {
			return nil, fmt.Errorf("%w: sales order %s is %s, not picked", ErrPreconditionFailed, sos[i].SONumber, sos[i].Status)
		}
		sos[i].Status = StatusShipped
		sos[i].ShippedDate = time.Now().Format(time.RFC3339)
		if err := s.repo.SaveSalesOrders(sos); err != nil {
			return nil, err
		}
		return &sos[i], nil
	}
	return nil, fmt.Errorf("%w: sales order %s", ErrNotFound, soID)
}
