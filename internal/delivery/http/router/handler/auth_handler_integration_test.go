package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"coursepass/config"
	custommiddleware "coursepass/internal/delivery/http/middleware"
	"coursepass/internal/delivery/http/validator"
	"coursepass/internal/domain/entity"
	domainerrors "coursepass/internal/domain/errors"
	"coursepass/internal/domain/repository"
	"coursepass/internal/domain/service"
	"coursepass/internal/infra/auth"
	"coursepass/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepository is an in-memory credential store for the end-to-end
// flow, indexed the same way the real store is.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.MobileNo == user.MobileNo {
			return domainerrors.ErrMobileAlreadyRegistered.WrapMessage("mobile number already registered")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memoryUserRepository) FindByMobile(ctx context.Context, mobileNo string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.MobileNo == mobileNo {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = newHash
	user.UpdatedAt = time.Now()

	return nil
}

func (r *memoryUserRepository) UpdateRememberMe(ctx context.Context, id uuid.UUID, rememberMe bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.RememberMe = rememberMe
	user.UpdatedAt = time.Now()

	return nil
}

type noopResetDispatcher struct{}

func (noopResetDispatcher) Dispatch(ctx context.Context, mobileNo string) error { return nil }

const integrationSecret = "integration-test-secret"

// newIntegrationServer assembles the real service stack on top of an
// in-memory store: actual bcrypt hashing (minimum cost to keep the test
// fast), actual JWT signing and the same routing shape as production.
func newIntegrationServer(t *testing.T) (*echo.Echo, service.TokenService) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	cfg.JWT.Secret = integrationSecret
	cfg.JWT.SessionTTL = 24 * time.Hour
	cfg.JWT.RememberTTL = 7 * 24 * time.Hour

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:        newMemoryUserRepository(),
		Hasher:          auth.NewBcryptHasher(cfg),
		TokenService:    tokenSvc,
		ResetDispatcher: noopResetDispatcher{},
		Logger:          logger,
	})

	h := NewAuthHandler(svc, logger)
	authMw := custommiddleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/forget-password", h.ForgetPassword)
	e.POST("/auth/change-password", h.ChangePassword, authMw.Authenticate)

	return e, tokenSvc
}

func TestAuthFlow_RegisterLoginChangePassword(t *testing.T) {
	e, _ := newIntegrationServer(t)

	// Register a new account.
	rec := postJSON(e, "/auth/register", `{
		"firstName": "Amina",
		"lastName": "Rahman",
		"mobileNo": "01711111111",
		"email": "amina@example.com",
		"password": "abc123"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registerResp struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registerResp))
	require.NotEqual(t, uuid.Nil, registerResp.Data.ID)
	assert.NotContains(t, rec.Body.String(), "abc123")

	// A second registration with the same mobile number is rejected.
	rec = postJSON(e, "/auth/register", `{
		"firstName": "Other",
		"lastName": "Person",
		"mobileNo": "01711111111",
		"email": "other@example.com",
		"password": "different"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MOBILE_ALREADY_REGISTERED")

	// Login with remember-me stretches the token lifetime to seven days.
	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "abc123",
		"rememberMe": true
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Data.Token)

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(loginResp.Data.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(integrationSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, registerResp.Data.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	// A wrong password is rejected without revealing which part failed.
	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "not-the-password"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")

	// An unknown mobile number is a distinct failure.
	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01999999999",
		"password": "abc123"
	}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Change the password using the session token.
	rec = postJSONWithToken(e, "/auth/change-password", loginResp.Data.Token, `{
		"oldPassword": "abc123",
		"newPassword": "xyz789"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old password no longer works; the new one does.
	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "abc123"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "xyz789"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Change-password without a token never reaches the handler.
	rec = postJSON(e, "/auth/change-password", `{
		"oldPassword": "xyz789",
		"newPassword": "whatever1"
	}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Forget-password answers 202 whether or not the account exists.
	rec = postJSON(e, "/auth/forget-password", `{"mobileNo": "01711111111"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = postJSON(e, "/auth/forget-password", `{"mobileNo": "01999999999"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAuthFlow_ChangePasswordWrongOldPassword(t *testing.T) {
	e, _ := newIntegrationServer(t)

	rec := postJSON(e, "/auth/register", `{
		"firstName": "Amina",
		"lastName": "Rahman",
		"mobileNo": "01711111111",
		"email": "amina@example.com",
		"password": "abc123"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "abc123"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))

	rec = postJSONWithToken(e, "/auth/change-password", loginResp.Data.Token, `{
		"oldPassword": "wrong-old",
		"newPassword": "xyz789"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")

	// The credential is untouched after the failed attempt.
	rec = postJSON(e, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "abc123"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
