package identity

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robohub/robohub/pkg/token"
)

func claimsFor(subject, role string) *token.Claims {
	return &token.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
}

func TestFromClaims(t *testing.T) {
	userID := uuid.New()

	id, err := FromClaims(claimsFor(userID.String(), "admin"))
	require.NoError(t, err)

	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "admin", id.Claims.Role)
}

func TestFromClaimsBadSubject(t *testing.T) {
	_, err := FromClaims(claimsFor("not-a-uuid", ""))
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	id, err := FromClaims(claimsFor(uuid.NewString(), "admin"))
	require.NoError(t, err)

	assert.True(t, id.HasRole("admin"))
	assert.True(t, id.IsAdmin())
	assert.False(t, id.HasRole("Admin"))
	assert.False(t, id.HasRole("user"))

	plain, err := FromClaims(claimsFor(uuid.NewString(), ""))
	require.NoError(t, err)
	assert.False(t, plain.IsAdmin())
	assert.False(t, plain.HasRole(""))

	// An absent role matches nothing, including the empty string on a
	// role-carrying identity.
	assert.False(t, id.HasRole(""))
}

func TestContextRoundTrip(t *testing.T) {
	id, err := FromClaims(claimsFor(uuid.NewString(), ""))
	require.NoError(t, err)

	ctx := Set(context.Background(), id)
	got, ok := Get(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = Get(context.Background())
	assert.False(t, ok)
}
