package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a platform account
type User struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"column:username;not null" json:"username"`
	Role          string    `gorm:"column:role;not null" json:"role"`
	WalletAddress *string   `gorm:"column:wallet_address" json:"wallet_address,omitempty"`
	IsVerified    bool      `gorm:"column:is_verified;not null" json:"is_verified"`
	IsPremium     bool      `gorm:"column:is_premium;not null" json:"is_premium"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasWallet reports whether a wallet address is linked.
func (u *User) HasWallet() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}
