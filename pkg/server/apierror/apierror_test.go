package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeStatus(t *testing.T) {
	tests := []struct {
		errType Type
		status  int
	}{
		{Unauthorized, http.StatusUnauthorized},
		{InvalidToken, http.StatusUnauthorized},
		{TokenExpired, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{ValidationError, http.StatusBadRequest},
		{BadRequest, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{DatabaseError, http.StatusInternalServerError},
		{ExternalService, http.StatusBadGateway},
		{ServiceUnavailable, http.StatusServiceUnavailable},
		{InternalError, http.StatusInternalServerError},
		{Type("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.errType.Status())
		})
	}
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, New(TokenExpired, "token has expired"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool `json:"success"`
		Err     struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "token_expired", body.Err.Type)
	assert.Equal(t, "token has expired", body.Err.Message)
}

func TestRespondWrapped(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, fmt.Errorf("handling request: %w", New(NotFound, "device not found")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespondOpaqueError(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internals must not leak.
	assert.NotContains(t, rec.Body.String(), "pq:")
}
