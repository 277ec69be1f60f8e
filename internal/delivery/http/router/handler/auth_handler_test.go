package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "coursepass/internal/delivery/context"
	custommiddleware "coursepass/internal/delivery/http/middleware"
	"coursepass/internal/delivery/http/validator"
	"coursepass/internal/domain/entity"
	domainerrors "coursepass/internal/domain/errors"
	mockUsecase "coursepass/internal/mocks/usecase"
	"coursepass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// handlerFixtures wires an echo instance the same way the server does, with
// the usecase replaced by a mock.
type handlerFixtures struct {
	echo *echo.Echo
	uc   *mockUsecase.MockAuthUsecase
}

func createTestHandler(t *testing.T) handlerFixtures {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/forget-password", h.ForgetPassword)

	return handlerFixtures{echo: e, uc: uc}
}

func postJSON(e *echo.Echo, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func postJSONWithToken(e *echo.Echo, path string, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	fx := createTestHandler(t)

	userID := uuid.New()
	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:           userID,
			FirstName:    "Amina",
			LastName:     "Rahman",
			MobileNo:     "01711111111",
			Email:        "amina@example.com",
			PasswordHash: "$2a$10$secret-hash",
		}}, nil)

	rec := postJSON(fx.echo, "/auth/register", `{
		"firstName": "Amina",
		"lastName": "Rahman",
		"mobileNo": "01711111111",
		"email": "amina@example.com",
		"password": "s3cret-pass"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, userID.String())
	assert.Contains(t, body, "01711111111")

	// The credential hash must never appear in any response.
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "passwordHash")
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	fx := createTestHandler(t)

	rec := postJSON(fx.echo, "/auth/register", `{
		"firstName": "Amina",
		"mobileNo": "01711111111",
		"password": "s3cret-pass"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateMobile(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrMobileAlreadyRegistered.WrapMessage("mobile number already registered"))

	rec := postJSON(fx.echo, "/auth/register", `{
		"firstName": "Amina",
		"lastName": "Rahman",
		"mobileNo": "01711111111",
		"email": "amina@example.com",
		"password": "s3cret-pass"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MOBILE_ALREADY_REGISTERED")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Token: "signed.jwt.token"}, nil)

	rec := postJSON(fx.echo, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "s3cret-pass",
		"rememberMe": true
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Login_UnknownMobile(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("no account for mobile number"))

	rec := postJSON(fx.echo, "/auth/login", `{
		"mobileNo": "01999999999",
		"password": "whatever"
	}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := postJSON(fx.echo, "/auth/login", `{
		"mobileNo": "01711111111",
		"password": "wrong-pass"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_ChangePassword_UsesAuthenticatedIdentity(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	userID := uuid.New()

	// Stand in for the auth middleware: inject the verified subject.
	e.POST("/auth/change-password", h.ChangePassword, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	})

	uc.EXPECT().
		ChangePassword(mock.Anything, userID, mock.AnythingOfType("*usecase.ChangePasswordInput")).
		Return(nil)

	rec := postJSON(e, "/auth/change-password", `{
		"oldPassword": "old-pass",
		"newPassword": "new-pass"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password changed successfully")
}

func TestAuthHandler_ForgetPassword_Accepted(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ForgetPassword(mock.Anything, mock.AnythingOfType("*usecase.ForgetPasswordInput")).
		Return(nil)

	rec := postJSON(fx.echo, "/auth/forget-password", `{"mobileNo": "01711111111"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password reset requested")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
