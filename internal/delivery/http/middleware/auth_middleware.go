package middleware

import (
	"strings"

	deliverycontext "coursepass/internal/delivery/context"
	"coursepass/internal/delivery/http/response"
	domainerrors "coursepass/internal/domain/errors"
	"coursepass/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware gates protected routes behind session token verification.
//
// The canonical header contract is "Authorization: Bearer <token>". A bare
// token without the Bearer prefix is rejected as invalid; earlier clients
// that sent one must upgrade.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and injects the authenticated
// subject into the request context. The three failure classes answer
// differently: no token at all is 403, an expired token is 401 with an
// explicit message, anything else invalid is a plain 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Forbidden(c, domainerrors.ErrTokenMissing.ErrorCode(), "Forbidden, no token provided")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return response.Unauthorized(c, domainerrors.ErrTokenExpired.ErrorCode(), "Unauthorized, token expired")
			}

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Unauthorized")
		}

		// Set user info on the context for handlers to use
		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
