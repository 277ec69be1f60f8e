// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"coursepass/config"
	domainerrors "coursepass/internal/domain/errors"
	"coursepass/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is injected through configuration at construction; it is
// the only copy of the secret in the process.
type jwtService struct {
	secret      string        // Shared secret for HS256 signing.
	sessionTTL  time.Duration // Lifetime of a plain login session.
	rememberTTL time.Duration // Lifetime when the caller asked to stay signed in.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:      cfg.JWT.Secret,
		sessionTTL:  cfg.JWT.SessionTTL,
		rememberTTL: cfg.JWT.RememberTTL,
	}, nil
}

// Issue creates a signed session token bound to the user's ID.
func (s *jwtService) Issue(userID uuid.UUID, rememberMe bool) (string, error) {
	ttl := s.sessionTTL
	if rememberMe {
		ttl = s.rememberTTL
	}

	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the validity of a token string against the shared secret.
// Expired tokens and structurally invalid tokens map to different domain
// errors so the middleware can answer each differently.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("session token past expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	return claims, nil
}
