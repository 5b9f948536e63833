package services

import (
	"fmt"
	"strings"

	"rf-wms/models"
	"rf-wms/repositories"
)

// BinService owns every quantity mutation against the bins aggregate. All
// writes run inside the repository's per-(bin,item) critical section, so two
// scanners hitting the same slot serialize instead of racing the
// non-negative invariant.
type BinService struct {
	repo *repositories.InventoryRepository
}

func NewBinService(repo *repositories.InventoryRepository) *BinService {
	return &BinService{repo: repo}
}

// QuantityOptions carries optional detail for a quantity mutation.
type QuantityOptions struct {
	Description string
	Zone        string
	Lots        []models.BinLot
	Serials     []string
}

// ValidateLotSerial checks the lot-sum and serial-count invariants against
// qty before anything is stored.
func ValidateLotSerial(lots []models.BinLot, serials []string, qty int) error {
	if len(lots) > 0 {
		sum := 0
		for _, lot := range lots {
			if lot.Qty <= 0 {
				return NewValidationError("lots", fmt.Sprintf("lot %s has non-positive qty", lot.LotCode))
			}
			sum += lot.Qty
		}
		if sum != qty {
			return fmt.Errorf("%w: lot total %d, quantity %d", ErrLotMismatch, sum, qty)
		}
	}
	if len(serials) > 0 && len(serials) != qty {
		return fmt.Errorf("%w: %d serials, quantity %d", ErrLotMismatch, len(serials), qty)
	}
	return nil
}

// AdjustQuantity applies a delta to the quantity of itemCode in binCode.
// A positive delta into a missing bin or item creates it (receiving into a
// brand-new bin is not an error). A delta that would leave the quantity
// negative is rejected with ErrInsufficientStock and nothing changes.
func (s *BinService) AdjustQuantity(binCode, itemCode string, delta int, opts QuantityOptions) error {
	if err := ValidateLotSerial(opts.Lots, opts.Serials, abs(delta)); err != nil {
		return err
	}

	return s.repo.WithBinItemLock(binCode, itemCode, func() error {
		bins, err := s.repo.GetBins()
		if err != nil {
			return err
		}

		bins, _, err = applyQuantity(bins, binCode, itemCode, delta, false, opts)
		if err != nil {
			return err
		}
		return s.repo.SaveBins(bins)
	})
}

// SetQuantity overwrites the quantity of itemCode in binCode. Counting uses
// this: the physical count is ground truth, so any qty >= 0 is accepted and
// a discrepancy surfaces as variance elsewhere, never as an error here.
func (s *BinService) SetQuantity(binCode, itemCode string, qty int, opts QuantityOptions) error {
	if qty < 0 {
		return NewValidationError("quantity", "must be >= 0")
	}
	if err := ValidateLotSerial(opts.Lots, opts.Serials, qty); err != nil {
		return err
	}

	return s.repo.WithBinItemLock(binCode, itemCode, func() error {
		bins, err := s.repo.GetBins()
		if err != nil {
			return err
		}

		bins, _, err = applyQuantity(bins, binCode, itemCode, qty, true, opts)
		if err != nil {
			return err
		}
		return s.repo.SaveBins(bins)
	})
}

// GetBinQuantity reads the current on-hand quantity for a (bin, item) pair.
// Missing bin or item reads as zero.
func (s *BinService) GetBinQuantity(binCode, itemCode string) (int, error) {
	bins, err := s.repo.GetBins()
	if err != nil {
		return 0, err
	}
	for i := range bins {
		if !strings.EqualFold(bins[i].BinCode, binCode) {
			continue
		}
		for j := range bins[i].Items {
			if strings.EqualFold(bins[i].Items[j].ItemCode, itemCode) {
				return bins[i].Items[j].Quantity, nil
			}
		}
	}
	return 0, nil
}

// CreateBin registers an empty bin. Fails with a ValidationError when the
// code is taken.
func (s *BinService) CreateBin(binCode, zone string) (*models.BinLocation, error) {
	binCode = strings.ToUpper(strings.TrimSpace(binCode))
	if binCode == "" {
		return nil, NewValidationError("binCode", "is required")
	}
	if zone == "" {
		zone = "Zone D - Receiving"
	}

	var created *models.BinLocation
	err := s.repo.WithBinItemLock(binCode, "", func() error {
		bins, err := s.repo.GetBins()
		if err != nil {
			return err
		}
		for i := range bins {
			if strings.EqualFold(bins[i].BinCode, binCode) {
				return NewValidationError("binCode", "already exists")
			}
		}

		bin := models.BinLocation{
			BinCode:  binCode,
			Zone:     zone,
			Capacity: 100,
			Status:   "active",
			Items:    []models.BinItem{},
		}
		bins = append(bins, bin)
		if err := s.repo.SaveBins(bins); err != nil {
			return err
		}
		created = &bin
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// applyQuantity mutates the in-memory bins slice: delta or absolute
// depending on absolute. Returns the resulting quantity. Pure with respect
// to storage; the caller persists.
func applyQuantity(bins []models.BinLocation, binCode, itemCode string, qty int, absolute bool, opts QuantityOptions) ([]models.BinLocation, int, error) {
	binIdx := -1
	for i := range bins {
		if strings.EqualFold(bins[i].BinCode, binCode) {
			binIdx = i
			break
		}
	}
	if binIdx < 0 {
		zone := opts.Zone
		if zone == "" {
			zone = "Zone D - Receiving"
		}
		bins = append(bins, models.BinLocation{
			BinCode:  strings.ToUpper(binCode),
			Zone:     zone,
			Capacity: 100,
			Status:   "active",
			Items:    []models.BinItem{},
		})
		binIdx = len(bins) - 1
	}

	bin := &bins[binIdx]
	itemIdx := -1
	for j := range bin.Items {
		if strings.EqualFold(bin.Items[j].ItemCode, itemCode) {
			itemIdx = j
			break
		}
	}
	if itemIdx < 0 {
		bin.Items = append(bin.Items, models.BinItem{
			ItemCode:    itemCode,
			Description: opts.Description,
		})
		itemIdx = len(bin.Items) - 1
	}

	item := &bin.Items[itemIdx]
	newQty := qty
	if !absolute {
		newQty = item.Quantity + qty
	}
	if newQty < 0 {
		return bins, item.Quantity, fmt.Errorf("%w: bin %s item %s has %d, need %d",
			ErrInsufficientStock, binCode, itemCode, item.Quantity, -qty)
	}

	item.Quantity = newQty
	if opts.Description != "" {
		item.Description = opts.Description
	}

	switch {
	case len(opts.Lots) > 0 || len(opts.Serials) > 0:
		item.Lots = mergeLots(item.Lots, opts.Lots)
		item.Serials = append(item.Serials, opts.Serials...)
		// Detail supplied for only part of the stock leaves the sub-totals
		// short of the quantity; drop it rather than store a broken split.
		if lotSum(item.Lots) != item.Quantity {
			item.Lots = nil
		}
		if len(item.Serials) > 0 && len(item.Serials) != item.Quantity {
			item.Serials = nil
		}
	default:
		// A quantity change without lot/serial detail invalidates whatever
		// split was stored; sub-totals must always sum to the quantity.
		if lotSum(item.Lots) != item.Quantity {
			item.Lots = nil
		}
		if len(item.Serials) > 0 && len(item.Serials) != item.Quantity {
			item.Serials = nil
		}
	}

	return bins, newQty, nil
}

func mergeLots(existing, incoming []models.BinLot) []models.BinLot {
	if len(incoming) == 0 {
		return existing
	}
	merged := make([]models.BinLot, len(existing))
	copy(merged, existing)
	for _, in := range incoming {
		found := false
		for i := range merged {
			if merged[i].LotCode == in.LotCode {
				merged[i].Qty += in.Qty
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, in)
		}
	}
	return merged
}

func lotSum(lots []models.BinLot) int {
	sum := 0
	for _, lot := range lots {
		sum += lot.Qty
	}
	return sum
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
