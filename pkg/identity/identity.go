package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/robohub/robohub/pkg/token"
)

// AdminRole is the role tag that grants access to admin-only endpoints.
const AdminRole = "admin"

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity is the authenticated identity for a request. It is created once
// per request by the auth middleware, is immutable afterward, and lives only
// for the lifetime of that request.
type Identity struct {
	// UserID is the token subject, the owner key for all data-scoping
	// queries.
	UserID uuid.UUID

	// Claims is the full decoded token payload.
	Claims token.Claims
}

// FromClaims builds an Identity from verified token claims. It fails when
// the subject is not a canonical UUID.
func FromClaims(claims *token.Claims) (*Identity, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID: userID,
		Claims: *claims,
	}, nil
}

// HasRole reports whether the identity carries the given role. The
// comparison is case-sensitive and an absent role matches nothing.
func (i *Identity) HasRole(role string) bool {
	return role != "" && i.Claims.Role == role
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.HasRole(AdminRole)
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
