package store

import (
	"github.com/google/uuid"

	"github.com/robohub/robohub/pkg/model"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	Status string
	Limit  int
	Offset int
}

// TransactionStats aggregates a user's payment history
type TransactionStats struct {
	Total       int64   `json:"total"`
	TotalAmount float64 `json:"total_amount"`
	Pending     int64   `json:"pending"`
	Completed   int64   `json:"completed"`
	Failed      int64   `json:"failed"`
}

// TransactionsStore abstracts payment record operations
type TransactionsStore interface {
	// ListTransactions returns a user's transactions, newest first.
	ListTransactions(userID uuid.UUID, filter TransactionFilter) ([]model.Transaction, error)

	// CreateTransaction records a new payment.
	CreateTransaction(tx *model.Transaction) error

	// AttachTxHash records an on-chain hash against the user's pending
	// transactions that lack one.
	AttachTxHash(userID uuid.UUID, txHash string) error

	// TransactionStats aggregates counts and amounts for a user.
	TransactionStats(userID uuid.UUID) (*TransactionStats, error)

	// RecentTransactions returns a user's most recent transactions.
	RecentTransactions(userID uuid.UUID, limit int) ([]model.Transaction, error)
}
