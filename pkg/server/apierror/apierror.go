package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Type is the stable, externally visible error code. Every internal
// failure projects onto exactly one Type; clients and operators key off
// these strings, so they never change.
type Type string

const (
	Unauthorized       Type = "unauthorized"
	InvalidToken       Type = "invalid_token"
	TokenExpired       Type = "token_expired"
	Forbidden          Type = "forbidden"
	ValidationError    Type = "validation_error"
	BadRequest         Type = "bad_request"
	NotFound           Type = "not_found"
	Conflict           Type = "conflict"
	DatabaseError      Type = "database_error"
	ExternalService    Type = "external_service_error"
	ServiceUnavailable Type = "service_unavailable"
	InternalError      Type = "internal_error"
)

// Status returns the HTTP status for a Type. Unknown types are treated as
// internal errors.
func (t Type) Status() int {
	switch t {
	case Unauthorized, InvalidToken, TokenExpired:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case ValidationError, BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ExternalService:
		return http.StatusBadGateway
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is an API error with a stable external code and a human-readable
// message. The message is the only diagnostic detail exposed to clients.
type Error struct {
	Type    Type
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// New creates an Error with the given type and message.
func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(t Type, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// envelope is the wire shape for error responses.
type envelope struct {
	Success bool `json:"success"`
	Err     struct {
		Type    Type   `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Respond writes err to w as a JSON error envelope. Errors that are not
// *Error are written as internal errors with a generic message so that
// internals never leak to clients.
func Respond(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = New(InternalError, "internal server error")
	}

	var body envelope
	body.Err.Type = apiErr.Type
	body.Err.Message = apiErr.Message

	response, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Type.Status())
	_, _ = w.Write(response)
}
