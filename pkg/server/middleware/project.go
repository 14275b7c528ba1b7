package middleware

import (
	"errors"
	"net/http"

	"github.com/robohub/robohub/pkg/server/apierror"
	"github.com/robohub/robohub/pkg/token"
)

// Project maps an extraction or authorization failure onto the external
// error taxonomy. The mapping is total: every failure kind produced by this
// package has exactly one external representation.
func Project(err error) *apierror.Error {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return apierror.New(apierror.Unauthorized, "missing authorization header")
	case errors.Is(err, ErrMalformedCredential):
		return apierror.New(apierror.Unauthorized, "invalid authorization header format")
	case errors.Is(err, ErrNotConfigured):
		return apierror.New(apierror.InternalError, "authentication is not configured")
	case errors.Is(err, token.ErrTokenExpired):
		return apierror.New(apierror.TokenExpired, "token has expired")
	case errors.Is(err, ErrInvalidCredential):
		return apierror.New(apierror.InvalidToken, err.Error())
	case errors.Is(err, ErrInsufficientRole):
		return apierror.New(apierror.Forbidden, err.Error())
	default:
		return apierror.New(apierror.InternalError, "internal server error")
	}
}

func respondAuthError(w http.ResponseWriter, err error) {
	apierror.Respond(w, Project(err))
}
