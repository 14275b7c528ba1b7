package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction statuses
const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
)

// Payment methods
const (
	PaymentStripe   = "stripe"
	PaymentRazorpay = "razorpay"
	PaymentCrypto   = "crypto"
)

// Transaction represents a payment record
type Transaction struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Amount           float64   `gorm:"column:amount;not null" json:"amount"`
	Currency         string    `gorm:"column:currency;not null" json:"currency"`
	PaymentMethod    string    `gorm:"column:payment_method;not null" json:"payment_method"`
	PaymentID        string    `gorm:"column:payment_id;uniqueIndex;not null" json:"payment_id"`
	Status           string    `gorm:"column:status;not null" json:"status"`
	ProductType      string    `gorm:"column:product_type" json:"product_type"`
	BlockchainTxHash *string   `gorm:"column:blockchain_tx_hash" json:"blockchain_tx_hash,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TxPending
	}
	return nil
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentStripe, PaymentRazorpay, PaymentCrypto:
		return true
	}
	return false
}
