package services

import (
	"fmt"
	"strings"
	"time"

	"rf-wms/controllers/idgen"
	"rf-wms/models"
	"rf-wms/repositories"
)

// ReceivingService handles purchase order receiving: quantity onto the PO
// line, stock into the putaway bin, one transaction record, derived status.
// The whole receive is validated first and applied as one logical unit.
type ReceivingService struct {
	repo *repositories.InventoryRepository
	bins *BinService
	txns *repositories.TransactionRepository
}

func NewReceivingService(repo *repositories.InventoryRepository, bins *BinService, txns *repositories.TransactionRepository) *ReceivingService {
	return &ReceivingService{repo: repo, bins: bins, txns: txns}
}

// ReceiveInput is one receive action against one PO line.
type ReceiveInput struct {
	POID     string         `json:"po_id" validate:"required"`
	ItemCode string         `json:"item_code" validate:"required"`
	Qty      int            `json:"qty" validate:"required,min=1"`
	BinCode  string         `json:"bin_code" validate:"required"`
	Lots     []models.POLot `json:"lots,omitempty"`
	Serials  []string       `json:"serials,omitempty"`
}

// Receive books qty of a PO line into binCode. Validation order: quantity,
// PO and line existence, lot/serial reconciliation. Only after everything
// passes does it mutate: POItem.ReceivedQty += qty, RemainingQty recomputed,
// bin upserted, ReceivingTransaction appended, PO status derived.
func (s *ReceivingService) Receive(in ReceiveInput) (*models.PurchaseOrder, error) {
	if in.Qty <= 0 {
		return nil, NewValidationError("qty", "must be greater than 0")
	}
	if strings.TrimSpace(in.BinCode) == "" {
		return nil, NewValidationError("bin_code", "is required")
	}

	pos, err := s.repo.GetPurchaseOrders()
	if err != nil {
		return nil, err
	}

	poIdx := -1
	for i := range pos {
		if pos[i].ID == in.POID || pos[i].PONumber == in.POID {
			poIdx = i
			break
		}
	}
	if poIdx < 0 {
		return nil, fmt.Errorf("%w: purchase order %s", ErrNotFound, in.POID)
	}

	po := &pos[poIdx]
	itemIdx := -1
	for i := range po.Items {
		if strings.EqualFold(po.Items[i].ItemCode, in.ItemCode) {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: item %s on PO %s", ErrNotFound, in.ItemCode, po.PONumber)
	}
	line := &po.Items[itemIdx]

	// Lot/serial capture is mandatory for flagged lines, and whatever is
	// supplied must reconcile against the received qty before anything moves.
	if line.RequiresLotSerial && len(in.Lots) == 0 && len(in.Serials) == 0 {
		return nil, NewValidationError("lots", "lot or serial capture is required for this item")
	}
	binLots := toBinLots(in.Lots)
	if err := ValidateLotSerial(binLots, in.Serials, in.Qty); err != nil {
		return nil, err
	}

	// Stock first: if the bin write fails nothing else has changed yet.
	err = s.bins.AdjustQuantity(in.BinCode, line.ItemCode, in.Qty, QuantityOptions{
		Description: line.Description,
		Lots:        binLots,
		Serials:     in.Serials,
	})
	if err != nil {
		return nil, err
	}

	line.ReceivedQty += in.Qty
	line.RemainingQty = line.OrderedQty - line.ReceivedQty
	if line.RemainingQty < 0 {
		line.RemainingQty = 0
	}
	line.BinCode = strings.ToUpper(in.BinCode)
	line.Lots = append(line.Lots, in.Lots...)
	line.Serials = append(line.Serials, in.Serials...)

	po.Status = DerivePOStatus(po.Items, po.Status)
	if po.Status == StatusCompleted && po.ReceivedDate == "" {
		po.ReceivedDate = time.Now().Format(time.RFC3339)
	}

	if err := s.repo.SavePurchaseOrders(pos); err != nil {
		return nil, err
	}

	txn := models.ReceivingTransaction{
		ID:          fmt.Sprintf("%d", idgen.GenerateID()),
		PONumber:    po.PONumber,
		ItemCode:    line.ItemCode,
		Description: line.Description,
		Qty:         in.Qty,
		BinCode:     strings.ToUpper(in.BinCode),
		Lots:        binLots,
		Serials:     in.Serials,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if err := s.txns.AppendReceiving(txn); err != nil {
		return nil, err
	}

	return po, nil
}

// ImportPurchaseOrders replaces the purchase-orders aggregate with freshly
// imported rows grouped by PO number.
func (s *ReceivingService) ImportPurchaseOrders(pos []models.PurchaseOrder) error {
	for i := range pos {
		for j := range pos[i].Items {
			line := &pos[i].Items[j]
			line.RemainingQty = line.OrderedQty - line.ReceivedQty
		}
		pos[i].Status = DerivePOStatus(pos[i].Items, pos[i].Status)
	}
	return s.repo.SavePurchaseOrders(pos)
}

func toBinLots(lots []models.POLot) []models.BinLot {
	if len(lots) == 0 {
		return nil
	}
	out := make([]models.BinLot, 0, len(lots))
	for _, lot := range lots {
		out = append(out, models.BinLot{LotCode: lot.LotCode, Qty: lot.Qty})
	}
	return out
}
