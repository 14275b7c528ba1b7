package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway is the clock-skew window tolerated when validating the
// exp and iat claims. A token is accepted up to DefaultLeeway past its
// expiry, and an iat up to DefaultLeeway in the future.
const DefaultLeeway = 60 * time.Second

var (
	// ErrTokenExpired is returned when a token is outside its validity
	// window (including the leeway).
	ErrTokenExpired = errors.New("token expired")

	// ErrSignatureInvalid is returned when the token signature does not
	// match the signing secret.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrMalformed is returned when the token cannot be parsed into the
	// expected structure.
	ErrMalformed = errors.New("token malformed")
)

// Claims is the decoded payload of a RoboHub bearer token. The subject is
// the user ID, and Role is empty for accounts without an elevated role.
// A Claims value carries no validity judgment: expiry is interpreted at
// verification time, not decode time.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the given subject. A negative ttl
// produces an already-expired token; this is intentional and is used to
// exercise expiry handling in tests.
func Issue(subject string, role string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify validates the signature and temporal validity of a token and
// returns its claims. Failures are one of ErrTokenExpired,
// ErrSignatureInvalid or ErrMalformed; the original parser error is
// wrapped for diagnostics.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(DefaultLeeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classify(err)
	}

	return claims, nil
}

// IsValid reports whether Verify would succeed. It is exactly the success
// predicate of Verify and discards the specific failure kind.
func IsValid(tokenString string, secret []byte) bool {
	_, err := Verify(tokenString, secret)
	return err == nil
}

// ExpiresIn returns the remaining validity of a token. The second return
// value is false when the token does not verify.
func ExpiresIn(tokenString string, secret []byte) (time.Duration, bool) {
	claims, err := Verify(tokenString, secret)
	if err != nil {
		return 0, false
	}
	return time.Until(claims.ExpiresAt.Time), true
}

// classify maps jwt parser errors onto the package's stable failure kinds.
// Temporal failures (expired, or issued too far in the future) map to
// ErrTokenExpired so clients can trigger a refresh flow.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
