package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rf-wms/controllers/idgen"
	"rf-wms/models"
	"rf-wms/repositories"
)

// CountingService covers the three counting modes: single cycle count tasks,
// sequential bin-range counting, and bulk full-count reconciliation. All
// three funnel through applyCount so variance and transaction logging cannot
// drift apart.
type CountingService struct {
	repo *repositories.InventoryRepository
	bins *BinService
	txns *repositories.TransactionRepository
}

func NewCountingService(repo *repositories.InventoryRepository, bins *BinService, txns *repositories.TransactionRepository) *CountingService {
	return &CountingService{repo: repo, bins: bins, txns: txns}
}

// CreateCycleCount opens a pending count task for one bin/item pair. The
// expected quantity is frozen at creation time.
func (s *CountingService) CreateCycleCount(binCode, itemCode string) (*models.CycleCount, error) {
	if binCode == "" || itemCode == "" {
		return nil, NewValidationError("bin_code", "bin and item are required")
	}

	expected, err := s.bins.GetBinQuantity(binCode, itemCode)
	if err != nil {
		return nil, err
	}

	task := models.CycleCount{
		ID:          fmt.Sprintf("%d", idgen.GenerateID()),
		BinCode:     binCode,
		ItemCode:    itemCode,
		ExpectedQty: expected,
		Status:      StatusPending,
	}

	counts, err := s.repo.GetCycleCounts()
	if err != nil {
		return nil, err
	}
	counts = append(counts, task)
	if err := s.repo.SaveCycleCounts(counts); err != nil {
		return nil, err
	}
	return &task, nil
}

// SubmitCount records the physical count for a task. The counted quantity is
// ground truth: the bin is overwritten to it, not adjusted by a delta.
// Re-submitting an already counted task overwrites the previous result.
func (s *CountingService) SubmitCount(taskID string, countedQty int, sessionID string) (*models.CycleCount, error) {
	if countedQty < 0 {
		return nil, NewValidationError("counted_qty", "must be 0 or greater")
	}

	counts, err := s.repo.GetCycleCounts()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range counts {
		if counts[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: cycle count %s", ErrNotFound, taskID)
	}

	if err := s.applyCount(&counts[idx], countedQty, sessionID); err != nil {
		return nil, err
	}
	if err := s.repo.SaveCycleCounts(counts); err != nil {
		return nil, err
	}

	if sessionID != "" {
		if err := s.advanceSessionPointer(sessionID, taskID); err != nil {
			return nil, err
		}
	}
	return &counts[idx], nil
}

// applyCount is the single write path shared by every counting mode: set the
// bin to the counted quantity, record variance on the task, append one
// transaction.
func (s *CountingService) applyCount(task *models.CycleCount, countedQty int, sessionID string) error {
	if err := s.bins.SetQuantity(task.BinCode, task.ItemCode, countedQty, QuantityOptions{}); err != nil {
		return err
	}

	variance := countedQty - task.ExpectedQty
	task.CountedQty = &countedQty
	task.Variance = &variance
	task.CountDate = time.Now().Format(time.RFC3339)
	task.Status = StatusCompleted

	return s.txns.AppendCycleCount(models.CycleCountTransaction{
		ID:          fmt.Sprintf("%d", idgen.GenerateID()),
		BinCode:     task.BinCode,
		ItemCode:    task.ItemCode,
		Description: s.itemDescription(task.ItemCode),
		ExpectedQty: task.ExpectedQty,
		CountedQty:  countedQty,
		Variance:    variance,
		SessionID:   sessionID,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

func (s *CountingService) itemDescription(itemCode string) string {
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

// StartSequentialCount expands a bin-code range into an ordered queue of
// pending count tasks, one per (bin, item) pair, sorted by bin code then
// item code. It requires an active session; the task IDs attach to it and
// the session pointer lands on the first task so an interrupted run resumes
// in place.
func (s *CountingService) StartSequentialCount(startBin, endBin string) ([]models.CycleCount, error) {
	if startBin == "" || endBin == "" {
		return nil, NewValidationError("start_bin", "start and end bins are required")
	}
	if startBin > endBin {
		return nil, NewValidationError("start_bin", "must not be after end bin")
	}

	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}
	sessIdx := activeSessionIndex(sessions)
	if sessIdx < 0 {
		return nil, fmt.Errorf("%w: sequential counting requires an active session", ErrPreconditionFailed)
	}

	bins, err := s.repo.GetBins()
	if err != nil {
		return nil, err
	}

	var queue []models.CycleCount
	for _, bin := range bins {
		if bin.BinCode < startBin || bin.BinCode > endBin {
			continue
		}
		for _, item := range bin.Items {
			queue = append(queue, models.CycleCount{
				ID:          fmt.Sprintf("%d", idgen.GenerateID()),
				BinCode:     bin.BinCode,
				ItemCode:    item.ItemCode,
				ExpectedQty: item.Quantity,
				Status:      StatusPending,
			})
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].BinCode != queue[j].BinCode {
			return queue[i].BinCode < queue[j].BinCode
		}
		return queue[i].ItemCode < queue[j].ItemCode
	})

	if len(queue) == 0 {
		return queue, nil
	}

	counts, err := s.repo.GetCycleCounts()
	if err != nil {
		return nil, err
	}
	counts = append(counts, queue...)
	if err := s.repo.SaveCycleCounts(counts); err != nil {
		return nil, err
	}

	sess := &sessions[sessIdx]
	for _, task := range queue {
		sess.CycleCountIDs = append(sess.CycleCountIDs, task.ID)
	}
	sess.CurrentCycleCountID = queue[0].ID
	sess.LastAccessedDate = time.Now().Format(time.RFC3339)
	if err := s.repo.SaveSessions(sessions); err != nil {
		return nil, err
	}

	return queue, nil
}

// SkipCurrent advances the session pointer to the next task without
// recording anything for the current one.
func (s *CountingService) SkipCurrent(sessionID string) (*models.InventorySession, error) {
	return s.moveSessionPointer(sessionID, 1)
}

// StepBack moves the session pointer to the previous task. It does not undo
// a submitted count; re-submitting overwrites.
func (s *CountingService) StepBack(sessionID string) (*models.InventorySession, error) {
	return s.moveSessionPointer(sessionID, -1)
}

func (s *CountingService) moveSessionPointer(sessionID string, step int) (*models.InventorySession, error) {
	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		if sessions[i].ID != sessionID {
			continue
		}
		sess := &sessions[i]
		if sess.Status != StatusActive {
			return nil, fmt.Errorf("%w: session %s is %s", ErrPreconditionFailed, sessionID, sess.Status)
		}

		pos := indexOf(sess.CycleCountIDs, sess.CurrentCycleCountID)
		if pos < 0 {
			// Pointer already cleared: skipping keeps it cleared, stepping
			// back lands on the last task.
			if step < 0 && len(sess.CycleCountIDs) > 0 {
				sess.CurrentCycleCountID = sess.CycleCountIDs[len(sess.CycleCountIDs)-1]
			}
		} else {
			next := pos + step
			if next < 0 {
				next = 0
			}
			if next >= len(sess.CycleCountIDs) {
				// Queue exhausted, clear the pointer.
				sess.CurrentCycleCountID = ""
			} else {
				sess.CurrentCycleCountID = sess.CycleCountIDs[next]
			}
		}
		sess.LastAccessedDate = time.Now().Format(time.RFC3339)
		if err := s.repo.SaveSessions(sessions); err != nil {
			return nil, err
		}
		return sess, nil
	}
	return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
}

// advanceSessionPointer moves the pointer past taskID after a submission,
// but only when the submission was for the task the pointer sits on.
func (s *CountingService) advanceSessionPointer(sessionID, taskID string) error {
	sessions, err := s.repo.GetSessions()
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].ID != sessionID {
			continue
		}
		if sessions[i].CurrentCycleCountID != taskID {
			return nil
		}
		pos := indexOf(sessions[i].CycleCountIDs, taskID)
		if pos >= 0 && pos+1 < len(sessions[i].CycleCountIDs) {
			sessions[i].CurrentCycleCountID = sessions[i].CycleCountIDs[pos+1]
		} else {
			sessions[i].CurrentCycleCountID = ""
		}
		sessions[i].LastAccessedDate = time.Now().Format(time.RFC3339)
		return s.repo.SaveSessions(sessions)
	}
	return nil
}

// CountRow is one line of a bulk-imported count sheet. CountedQty nil means
// the row was never counted and is skipped.
type CountRow struct {
	BinCode     string `json:"BinCode"`
	ItemCode    string `json:"ItemCode"`
	Description string `json:"Description"`
	ExpectedQty int    `json:"ExpectedQty"`
	CountedQty  *int   `json:"CountedQty"`
}

// ReconcileFullCount applies a bulk count sheet: every row carrying a
// counted value becomes a completed cycle count through the same applyCount
// path as a single task. New task IDs attach to the active session when one
// exists. Rows without a counted value are tolerated and skipped. The whole
// sheet is validated up front; a bad row rejects the import before anything
// is written.
func (s *CountingService) ReconcileFullCount(rows []CountRow) ([]models.CycleCount, error) {
	for _, row := range rows {
		if row.CountedQty == nil {
			continue
		}
		if row.BinCode == "" || row.ItemCode == "" {
			return nil, NewValidationError("BinCode", "bin and item are required on counted rows")
		}
		if *row.CountedQty < 0 {
			return nil, NewValidationError("CountedQty", fmt.Sprintf("negative count for %s/%s", row.BinCode, row.ItemCode))
		}
	}

	counts, err := s.repo.GetCycleCounts()
	if err != nil {
		return nil, err
	}
	sessions, err := s.repo.GetSessions()
	if err != nil {
		return nil, err
	}
	sessIdx := activeSessionIndex(sessions)
	sessionID := ""
	if sessIdx >= 0 {
		sessionID = sessions[sessIdx].ID
	}

	var created []models.CycleCount
	for _, row := range rows {
		if row.CountedQty == nil {
			continue
		}

		task := models.CycleCount{
			ID:          fmt.Sprintf("%d", idgen.GenerateID()),
			BinCode:     row.BinCode,
			ItemCode:    row.ItemCode,
			ExpectedQty: row.ExpectedQty,
			Status:      StatusPending,
		}
		if err := s.applyCount(&task, *row.CountedQty, sessionID); err != nil {
			return nil, err
		}
		counts = append(counts, task)
		created = append(created, task)
		if sessIdx >= 0 {
			sessions[sessIdx].CycleCountIDs = append(sessions[sessIdx].CycleCountIDs, task.ID)
		}
	}

	if err := s.repo.SaveCycleCounts(counts); err != nil {
		return nil, err
	}
	if sessIdx >= 0 && len(created) > 0 {
		sessions[sessIdx].LastAccessedDate = time.Now().Format(time.RFC3339)
		if err := s.repo.SaveSessions(sessions); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// GetSessionTransactions returns the durable count record for a session, the
// transaction log filtered by session ID.
func (s *CountingService) GetSessionTransactions(sessionID string) ([]models.CycleCountTransaction, error) {
	return s.txns.GetCycleCountBySession(sessionID)
}

func activeSessionIndex(sessions []models.InventorySession) int {
	for i := range sessions {
		if sessions[i].Status == StatusActive {
			return i
		}
	}
	return -1
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
