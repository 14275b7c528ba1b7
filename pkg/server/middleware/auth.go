package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/robohub/robohub/pkg/audit"
	"github.com/robohub/robohub/pkg/identity"
	"github.com/robohub/robohub/pkg/token"
)

// bearerPrefix is the exact, case-sensitive credential scheme prefix.
const bearerPrefix = "Bearer "

var (
	// ErrMissingCredential is returned when the Authorization header is
	// absent.
	ErrMissingCredential = errors.New("missing authorization header")

	// ErrMalformedCredential is returned when the Authorization header does
	// not carry a well-formed bearer credential, or when the token subject
	// is not a canonical UUID.
	ErrMalformedCredential = errors.New("invalid authorization header format")

	// ErrNotConfigured is returned when no signing secret was configured.
	// This is a server misconfiguration, not a client error.
	ErrNotConfigured = errors.New("token signing secret not configured")

	// ErrInvalidCredential wraps verifier failures for presented tokens.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrInsufficientRole is returned when a valid identity lacks the role
	// required by an endpoint. Distinct from authentication failures.
	ErrInsufficientRole = errors.New("insufficient role")
)

// Authenticator extracts authenticated identities from inbound requests.
// It holds the signing secret as an explicit dependency so that extraction
// is a pure function of (request, secret) plus the request-scoped cache.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator. An empty secret is allowed at
// construction; extraction then fails with ErrNotConfigured.
func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{secret: secret}
}

// Authenticate extracts the required identity from a request. On success
// the identity is cached in the request context and the (possibly updated)
// request is returned; calling Authenticate again on the returned request
// reuses the cached identity instead of re-verifying.
func (a *Authenticator) Authenticate(r *http.Request) (*identity.Identity, *http.Request, error) {
	if id, ok := identity.Get(r.Context()); ok {
		return id, r, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, r, ErrMissingCredential
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, r, ErrMalformedCredential
	}
	tokenString := authHeader[len(bearerPrefix):]

	if len(a.secret) == 0 {
		return nil, r, ErrNotConfigured
	}

	claims, err := token.Verify(tokenString, a.secret)
	if err != nil {
		// Keep the verifier failure in the chain so expiry can be projected
		// to its own external code.
		return nil, r, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	id, err := identity.FromClaims(claims)
	if err != nil {
		return nil, r, fmt.Errorf("%w: invalid subject in token", ErrMalformedCredential)
	}

	return id, r.WithContext(identity.Set(r.Context(), id)), nil
}

// AuthenticateOptional extracts an identity if the request carries a valid
// credential and returns nil otherwise. It never fails: every failure path
// (missing header, malformed prefix, missing secret, invalid or expired
// token) yields absence. Read paths use this to tolerate anonymity.
func (a *Authenticator) AuthenticateOptional(r *http.Request) (*identity.Identity, *http.Request) {
	id, r, err := a.Authenticate(r)
	if err != nil {
		return nil, r
	}
	return id, r
}

// RequireRole performs required extraction and then enforces a role. An
// extraction failure propagates unchanged; a valid identity without the
// role fails with ErrInsufficientRole.
func (a *Authenticator) RequireRole(r *http.Request, role string) (*identity.Identity, *http.Request, error) {
	id, r, err := a.Authenticate(r)
	if err != nil {
		return nil, r, err
	}

	if !id.HasRole(role) {
		return nil, r, fmt.Errorf("%w: %s access required", ErrInsufficientRole, role)
	}

	return id, r, nil
}

// Required is mux middleware that rejects unauthenticated requests. On
// success the identity is available to handlers via identity.Get.
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, r, err := a.Authenticate(r)
		if err != nil {
			audit.Log(audit.AuthnEvent{ClientIP: clientIP(r), Error: err.Error()})
			respondAuthError(w, err)
			return
		}

		audit.Log(audit.AuthnEvent{UserID: id.UserID.String(), ClientIP: clientIP(r), Success: true})
		next.ServeHTTP(w, r)
	})
}

// Optional is mux middleware that attaches an identity when a valid
// credential is present and passes the request through anonymously
// otherwise.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, r = a.AuthenticateOptional(r)
		next.ServeHTTP(w, r)
	})
}

// Admin is mux middleware that additionally requires the admin role.
func (a *Authenticator) Admin(next http.Handler) http.Handler {
	return a.RoleRequired(identity.AdminRole, next)
}

// RoleRequired is mux middleware enforcing an arbitrary role.
func (a *Authenticator) RoleRequired(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, r, err := a.RequireRole(r, role)
		if err != nil {
			audit.Log(audit.AuthnEvent{ClientIP: clientIP(r), Error: err.Error()})
			respondAuthError(w, err)
			return
		}

		audit.Log(audit.AuthnEvent{UserID: id.UserID.String(), ClientIP: clientIP(r), Success: true})
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
