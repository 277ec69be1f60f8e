// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"coursepass/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when no user matches
// the lookup key. The application layer matches on it instead of
// database-specific errors.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: the only component that touches
// durable user state. It performs no hashing or token logic.
type UserRepository interface {
	// Create persists a new user. The entity's PasswordHash must already be
	// set; the store assigns ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByMobile retrieves a single user by their mobile number.
	FindByMobile(ctx context.Context, mobileNo string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePassword replaces the stored credential hash for an existing user.
	UpdatePassword(ctx context.Context, id uuid.UUID, newHash string) error

	// UpdateRememberMe records the caller's latest "stay signed in" choice.
	// Concurrent logins race last-write-wins, which is acceptable: the flag
	// only affects the expiry of that caller's own freshly issued token.
	UpdateRememberMe(ctx context.Context, id uuid.UUID, rememberMe bool) error
}
