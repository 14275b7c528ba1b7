package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server/store"
)

// Ensure TransactionsStore implements store.TransactionsStore
var _ store.TransactionsStore = (*TransactionsStore)(nil)

// TransactionsStore implements store.TransactionsStore using GORM
type TransactionsStore struct {
	db *gorm.DB
}

// NewTransactionsStore creates a new TransactionsStore
func NewTransactionsStore(db *gorm.DB) *TransactionsStore {
	return &TransactionsStore{db: db}
}

// ListTransactions returns a user's transactions, newest first
func (s *TransactionsStore) ListTransactions(userID uuid.UUID, filter store.TransactionFilter) ([]model.Transaction, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var transactions []model.Transaction
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction records a new payment
func (s *TransactionsStore) CreateTransaction(tx *model.Transaction) error {
	return s.db.Create(tx).Error
}

// AttachTxHash records an on-chain hash against pending transactions
func (s *TransactionsStore) AttachTxHash(userID uuid.UUID, txHash string) error {
	return s.db.Exec(
		`UPDATE transactions SET blockchain_tx_hash = ?, updated_at = NOW() WHERE user_id = ? AND blockchain_tx_hash IS NULL`,
		txHash, userID,
	).Error
}

// TransactionStats aggregates counts and amounts for a user
func (s *TransactionsStore) TransactionStats(userID uuid.UUID) (*store.TransactionStats, error) {
	stats := &store.TransactionStats{}

	type statusRow struct {
		Status string
		Count  int64
		Amount float64
	}
	var rows []statusRow
	err := s.db.Raw(
		`SELECT status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount
		 FROM transactions WHERE user_id = ? GROUP BY status`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.TxPending:
			stats.Pending = row.Count
		case model.TxCompleted:
			stats.Completed = row.Count
			stats.TotalAmount = row.Amount
		case model.TxFailed:
			stats.Failed = row.Count
		}
	}

	return stats, nil
}

// RecentTransactions returns a user's most recent transactions
func (s *TransactionsStore) RecentTransactions(userID uuid.UUID, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
