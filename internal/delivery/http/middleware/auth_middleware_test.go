package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursepass/config"
	deliverycontext "coursepass/internal/delivery/context"
	"coursepass/internal/domain/service"
	"coursepass/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningSecret = "middleware-test-secret"

func newTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSigningSecret
	cfg.JWT.SessionTTL = time.Hour
	cfg.JWT.RememberTTL = 7 * 24 * time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

// signExpiredToken mints a token whose expiry is already in the past, signed
// with the same secret the middleware verifies against.
func signExpiredToken(t *testing.T, userID uuid.UUID) string {
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	return signed
}

// invokeAuthenticate runs the middleware against a request carrying the
// given Authorization header and reports the recorder plus whether the
// wrapped handler ran.
func invokeAuthenticate(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	m := NewAuthMiddleware(newTestTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerRan = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, handlerRan, c
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	rec, handlerRan, _ := invokeAuthenticate(t, "")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden, no token provided")
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthMiddleware_BareTokenWithoutBearerPrefix(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.Issue(uuid.New(), false)
	require.NoError(t, err)

	rec, handlerRan, _ := invokeAuthenticate(t, token)

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := signExpiredToken(t, uuid.New())

	rec, handlerRan, _ := invokeAuthenticate(t, "Bearer "+expired)

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized, token expired")
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	rec, handlerRan, _ := invokeAuthenticate(t, "Bearer not.a.jwt")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	userID := uuid.New()
	token, err := tokenSvc.Issue(userID, false)
	require.NoError(t, err)

	rec, handlerRan, c := invokeAuthenticate(t, "Bearer "+token)

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := deliverycontext.GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}
