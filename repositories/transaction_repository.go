package repositories

import (
	"rf-wms/models"
)

// TransactionRepository is the append-only audit log. Records are only ever
// appended and read, never updated.
type TransactionRepository struct {
	store Store
}

func NewTransactionRepository(store Store) *TransactionRepository {
	return &TransactionRepository{store}
}

func (r *TransactionRepository) AppendReceiving(txn models.ReceivingTransaction) error {
	var txns []models.ReceivingTransaction
	if _, err := r.store.Get(KeyReceivingTransactions, &txns); err != nil {
		return err
	}
	txns = append(txns, txn)
	return r.store.Set(KeyReceivingTransactions, txns)
}

func (r *TransactionRepository) GetReceiving() ([]models.ReceivingTransaction, error) {
	var txns []models.ReceivingTransaction
	if _, err := r.store.Get(KeyReceivingTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *TransactionRepository) AppendCycleCount(txn models.CycleCountTransaction) error {
	var txns []models.CycleCountTransaction
	if _, err := r.store.Get(KeyCycleCountTransactions, &txns); err != nil {
		return err
	}
	txns = append(txns, txn)
	return r.store.Set(KeyCycleCountTransactions, txns)
}

func (r *TransactionRepository) GetCycleCount() ([]models.CycleCountTransaction, error) {
	var txns []models.CycleCountTransaction
	if _, err := r.store.Get(KeyCycleCountTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// GetCycleCountBySession filters the count log down to one session's
// activity. A sequential count has no completion entity of its own; this
// filtered log is its record.
func (r *TransactionRepository) GetCycleCountBySession(sessionID string) ([]models.CycleCountTransaction, error) {
	txns, err := r.GetCycleCount()
	if err != nil {
		return nil, err
	}

	var out []models.CycleCountTransaction
	for _, txn := range txns {
		if txn.SessionID == sessionID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *TransactionRepository) AppendTransfer(txn models.TransferTransaction) error {
	var txns []models.TransferTransaction
	if _, err := r.store.Get(KeyTransferTransactions, &txns); err != nil {
		return err
	}
	txns = append(txns, txn)
	return r.store.Set(KeyTransferTransactions, txns)
}

func (r *TransactionRepository) GetTransfer() ([]models.TransferTransaction, error) {
	var txns []models.TransferTransaction
	if _, err := r.store.Get(KeyTransferTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}
