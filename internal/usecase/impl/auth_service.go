// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "coursepass/internal/delivery/context"
	"coursepass/internal/domain/entity"
	domainerrors "coursepass/internal/domain/errors"
	"coursepass/internal/domain/repository"
	"coursepass/internal/domain/service"
	"coursepass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	resetDispatcher service.PasswordResetDispatcher
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	ResetDispatcher service.PasswordResetDispatcher
	Logger          *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		resetDispatcher: params.ResetDispatcher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The plaintext password is hashed before
// anything is persisted; the credential store never sees it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("mobile_no", input.MobileNo))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MobileNo:     input.MobileNo,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		RememberMe:   input.RememberMe,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("mobile_no", input.MobileNo), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login authenticates by mobile number and password and mints a session
// token. The caller's remember-me choice is persisted before the token is
// issued; concurrent logins race last-write-wins on that flag, which is fine
// because it only shapes this caller's own token lifetime.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("mobile_no", input.MobileNo))

	user, err := srv.userRepo.FindByMobile(ctx, input.MobileNo)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for mobile number")
		}

		return nil, errors.Wrap(err, "failed to find user by mobile")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if err := srv.userRepo.UpdateRememberMe(ctx, user.ID, input.RememberMe); err != nil {
		return nil, errors.Wrap(err, "failed to persist remember-me preference")
	}

	token, err := srv.tokenService.Issue(user.ID, input.RememberMe)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID), slog.Bool("rememberMe", input.RememberMe))

	return &usecase.LoginOutput{Token: token}, nil
}

// ChangePassword re-verifies the old credential before committing a new
// hash. Existing session tokens are not revoked; they stay valid until
// their natural expiry.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Password change requested", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		// Should not normally occur right after token verification, but the
		// account may have been removed since the token was issued.
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("authenticated user no longer exists")
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Old password mismatch", slog.Any("userID", userID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("old password mismatch")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Debug("Password changed", slog.Any("userID", userID))

	return nil
}

// ForgetPassword hands the identifier to the external reset collaborator.
// The outcome is the same whether or not the account exists.
func (srv *authService) ForgetPassword(ctx context.Context, input *usecase.ForgetPasswordInput) error {
	if err := srv.resetDispatcher.Dispatch(ctx, input.MobileNo); err != nil {
		return errors.Wrap(err, "failed to dispatch password reset")
	}

	return nil
}
