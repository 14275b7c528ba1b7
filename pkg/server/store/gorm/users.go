package gorm

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FetchUser retrieves a user by ID
func (s *UsersStore) FetchUser(userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// LinkWallet attaches a wallet address to the user's account
func (s *UsersStore) LinkWallet(userID uuid.UUID, address string) error {
	var claimed int64
	err := s.db.Model(&model.User{}).
		Where("wallet_address = ? AND id != ?", address, userID).
		Count(&claimed).Error
	if err != nil {
		return err
	}
	if claimed > 0 {
		return store.ErrWalletTaken
	}

	result := s.db.Exec(
		`UPDATE users SET wallet_address = ?, updated_at = NOW() WHERE id = ?`,
		address, userID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// CountUsers returns the platform-wide user count
func (s *UsersStore) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
