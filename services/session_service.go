package services

import (
	"fmt"
	"strings"
	"time"

	"rf-wms/controllers/idgen"
	"rf-wms/models"
	"rf-wms/repositories"
)

// SessionService manages counting sessions and temporary locations. Only one
// session is active at a time; activating one pauses the rest. Sessions are
// a workflow grouping and own no stock.
type SessionService struct {
	repo *repositories.InventoryRepository
	bins *BinService
	txns *repositories.TransactionRepository
}

func NewSessionService(repo *repositories.InventoryRepository, bins *BinService, txns *repositories.TransactionRepository) *SessionService {
	return &SessionService{repo: repo, bins: bins, txns: txns}
}

func (s *SessionService) CreateSession(name string) (*models.InventorySession, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "is required")
	}

	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}

	// Hanya satu sesi aktif dalam satu waktu
	for i := range sessions {
		if sessions[i].Status == StatusActive {
			sessions[i].Status = StatusPaused
		}
	}

	now := time.Now().Format(time.RFC3339)
	sess := models.InventorySession{
		ID:               fmt.Sprintf("%d", idgen.GenerateID()),
		Name:             name,
		CreatedDate:      now,
		LastAccessedDate: now,
		Status:           StatusActive,
	}
	sessions = append(sessions, sess)
	if err := s.repo.SaveSessions(sessions); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionService) GetSessions() ([]models.InventorySession, error) {
	return s.repo.GetSessions()
}

// CurrentSession returns the active session, or NotFound when none is
// active.
func (s *SessionService) CurrentSession() (*models.InventorySession, error) {
	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}
	if idx := activeSessionIndex(sessions); idx >= 0 {
		return &sessions[idx], nil
	}
	return nil, fmt.Errorf("%w: no active session", ErrNotFound)
}

func (s *SessionService) PauseSession(sessionID string) (*models.InventorySession, error) {
	return s.transition(sessionID, StatusPaused)
}

// ResumeSession re-activates a paused session. Any other active session is
// paused so the resumed one becomes current; its resumption pointer is left
// untouched so counting picks up exactly where it stopped.
func (s *SessionService) ResumeSession(sessionID string) (*models.InventorySession, error) {
	return s.transition(sessionID, StatusActive)
}

// CompleteSession is terminal. A completed session cannot be resumed and
// accepts no further task attachments.
func (s *SessionService) CompleteSession(sessionID string) (*models.InventorySession, error) {
	return s.transition(sessionID, StatusCompleted)
}

func (s *SessionService) transition(sessionID, target string) (*models.InventorySession, error) {
	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range sessions {
		if sessions[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	sess := &sessions[idx]

	if sess.Status == StatusCompleted {
		return nil, fmt.Errorf("%w: session %s is completed", ErrPreconditionFailed, sessionID)
	}

	if target == StatusActive {
		for i := range sessions {
			if i != idx && sessions[i].Status == StatusActive {
				sessions[i].Status = StatusPaused
			}
		}
	}
	sess.Status = target
	sess.LastAccessedDate = time.Now().Format(time.RFC3339)
	if target == StatusCompleted {
		sess.CurrentCycleCountID = ""
	}

	if err := s.repo.SaveSessions(sessions); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) CreateTemporaryLocation(title, description string) (*models.TemporaryLocation, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "is required")
	}

	temps, err := s.repo.GetTemporaryLocations()
	if err != nil {
		return nil, err
	}
	temp := models.TemporaryLocation{
		ID:          fmt.Sprintf("%d", idgen.GenerateID()),
		Title:       title,
		Description: description,
		CreatedDate: time.Now().Format(time.RFC3339),
	}
	temps = append(temps, temp)
	if err := s.repo.SaveTemporaryLocations(temps); err != nil {
		return nil, err
	}
	return &temp, nil
}

func (s *SessionService) GetTemporaryLocations() ([]models.TemporaryLocation, error) {
	return s.repo.GetTemporaryLocations()
}

// MoveToTemp stages stock from an in-progress count into a temporary
// location. The cap is the quantity the operator has actually counted for
// that bin/item in the active session, not the bin's full on-hand; stock
// that hasn't been verified can't be moved. The moved amount comes off the
// task's counted quantity and the bin, and merges into the temp location by
// item code. No transaction is written here; the count submission is the
// durable record.
func (s *SessionService) MoveToTemp(fromBin, itemCode string, qty int, destTempID string) (*models.TemporaryLocation, error) {
	if qty <= 0 {
		return nil, NewValidationError("qty", "must be greater than 0")
	}

	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}
	sessIdx := activeSessionIndex(sessions)
	if sessIdx < 0 {
		return nil, fmt.Errorf("%w: moving stock requires an active session", ErrPreconditionFailed)
	}
	sess := &sessions[sessIdx]

	counts, err := s.repo.GetCycleCounts()
	if err != nil {
		return nil, err
	}

	taskIdx := -1
	for _, id := range sess.CycleCountIDs {
		for i := range counts {
			if counts[i].ID == id && counts[i].BinCode == fromBin && strings.EqualFold(counts[i].ItemCode, itemCode) {
				taskIdx = i
			}
		}
	}
	if taskIdx < 0 {
		return nil, fmt.Errorf("%w: no count in this session for %s in %s", ErrNotFound, itemCode, fromBin)
	}
	task := &counts[taskIdx]

	if task.CountedQty == nil {
		return nil, fmt.Errorf("%w: %s in %s has not been counted yet", ErrPreconditionFailed, itemCode, fromBin)
	}
	if qty > *task.CountedQty {
		return nil, NewValidationError("qty", fmt.Sprintf("exceeds counted quantity %d", *task.CountedQty))
	}

	temps, err := s.repo.GetTemporaryLocations()
	if err != nil {
		return nil, err
	}
	tempIdx := -1
	for i := range temps {
		if temps[i].ID == destTempID {
			tempIdx = i
			break
		}
	}
	if tempIdx < 0 {
		return nil, fmt.Errorf("%w: temporary location %s", ErrNotFound, destTempID)
	}

	newCounted := *task.CountedQty - qty
	if err := s.bins.SetQuantity(fromBin, task.ItemCode, newCounted, QuantityOptions{}); err != nil {
		return nil, err
	}

	task.CountedQty = &newCounted
	variance := newCounted - task.ExpectedQty
	task.Variance = &variance
	if err := s.repo.SaveCycleCounts(counts); err != nil {
		return nil, err
	}

	temp := &temps[tempIdx]
	merged := false
	for i := range temp.Items {
		if strings.EqualFold(temp.Items[i].ItemCode, task.ItemCode) {
			temp.Items[i].Quantity += qty
			temp.Items[i].MovedDate = time.Now().Format(time.RFC3339)
			merged = true
			break
		}
	}
	if !merged {
		temp.Items = append(temp.Items, models.TemporaryLocationItem{
			ItemCode:    task.ItemCode,
			Description: s.itemDescription(task.ItemCode),
			Quantity:    qty,
			SourceBin:   fromBin,
			MovedDate:   time.Now().Format(time.RFC3339),
		})
	}
	if err := s.repo.SaveTemporaryLocations(temps); err != nil {
		return nil, err
	}

	sess.LastAccessedDate = time.Now().Format(time.RFC3339)
	if err := s.repo.SaveSessions(sessions); err != nil {
		return nil, err
	}
	return temp, nil
}

// PutAway moves staged stock out of a temporary location into a destination
// bin and logs a transfer. The temp entry shrinks and disappears at zero.
func (s *SessionService) PutAway(tempID, itemCode, destBin string, qty int) (*models.TemporaryLocation, error) {
	if qty <= 0 {
		return nil, NewValidationError("qty", "must be greater than 0")
	}
	if destBin == "" {
		return nil, NewValidationError("dest_bin", "is required")
	}

	temps, err := s.repo.GetTemporaryLocations()
	if err != nil {
		return nil, err
	}

	tempIdx := -1
	for i := range temps {
		if temps[i].ID == tempID {
			tempIdx = i
			break
		}
	}
	if tempIdx < 0 {
		return nil, fmt.Errorf("%w: temporary location %s", ErrNotFound, tempID)
	}
	temp := &temps[tempIdx]

	itemIdx := -1
	for i := range temp.Items {
		if strings.EqualFold(temp.Items[i].ItemCode, itemCode) {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: item %s in temporary location %s", ErrNotFound, itemCode, temp.Title)
	}
	item := &temp.Items[itemIdx]

	if qty > item.Quantity {
		return nil, fmt.Errorf("%w: temporary location holds %d of %s", ErrInsufficientStock, item.Quantity, itemCode)
	}

	if err := s.bins.AdjustQuantity(destBin, item.ItemCode, qty, QuantityOptions{Description: item.Description}); err != nil {
		return nil, err
	}

	sourceBin := item.SourceBin
	item.Quantity -= qty
	if item.Quantity == 0 {
		temp.Items = append(temp.Items[:itemIdx], temp.Items[itemIdx+1:]...)
	}
	if err := s.repo.SaveTemporaryLocations(temps); err != nil {
		return nil, err
	}

	if err := s.txns.AppendTransfer(models.TransferTransaction{
		ID:             fmt.Sprintf("%d", idgen.GenerateID()),
		ItemCode:       itemCode,
		Description:    s.itemDescription(itemCode),
		SourceBin:      sourceBin,
		DestinationBin: destBin,
		Qty:            qty,
		Timestamp:      time.Now().Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}
	return temp, nil
}

func (s *SessionService) itemDescription(itemCode string) string {
	items, err := s.repo.GetActiveItems()
	if err != nil {
		return ""
	}
	for _, item := range items {
		if strings.EqualFold(item.ItemCode, itemCode) {
			return item.Description
		}
	}
	return ""
}
