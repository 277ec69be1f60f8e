// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"coursepass/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName  string
	LastName   string
	MobileNo   string
	Email      string
	Password   string
	RememberMe bool
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	MobileNo   string
	Password   string
	RememberMe bool
}

// ChangePasswordInput carries the old and new credential for an
// authenticated password change. The caller's identity comes from the
// verified token, never from the request body.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ForgetPasswordInput identifies the account a reset is requested for.
type ForgetPasswordInput struct {
	MobileNo string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the signed session token after a successful login.
// The password hash is never part of any output.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	ForgetPassword(ctx context.Context, input *ForgetPasswordInput) error
}
