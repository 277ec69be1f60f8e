package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
// The wire payload is {id, iat, exp}.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService mints and validates stateless session tokens. Tokens are
// never stored server-side: validity is determined solely by signature and
// expiry at verification time. There is no revocation: a token stays valid
// until its expiry even if the password changes in the meantime.
type TokenService interface {
	// Issue creates a signed session token bound to the user's ID. The
	// remember-me flag selects the longer of the two configured lifetimes.
	Issue(userID uuid.UUID, rememberMe bool) (string, error)

	// Verify checks the validity of a token string. Failures are reported
	// through the domain error taxonomy so callers can tell an expired token
	// (domainerrors.ErrTokenExpired) apart from a malformed or badly signed
	// one (domainerrors.ErrTokenInvalid).
	Verify(tokenString string) (*Claims, error)
}
