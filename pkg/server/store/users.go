package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robohub/robohub/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist
var ErrUserNotFound = errors.New("user not found")

// ErrWalletTaken is returned when a wallet is already linked to another
// account
var ErrWalletTaken = errors.New("wallet already linked to another account")

// UsersStore abstracts user account operations
type UsersStore interface {
	// FetchUser retrieves a user by ID.
	// Returns ErrUserNotFound if the user doesn't exist.
	FetchUser(userID uuid.UUID) (*model.User, error)

	// LinkWallet attaches a wallet address to the user's account.
	// Returns ErrWalletTaken if another account already claims it.
	LinkWallet(userID uuid.UUID, address string) error

	// CountUsers returns the platform-wide user count.
	CountUsers() (int64, error)
}
