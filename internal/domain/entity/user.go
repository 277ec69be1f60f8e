// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record for one platform account. The mobile number is
// the login key; email is a secondary unique attribute kept for lookups.
type User struct {
	ID           uuid.UUID // Stable identifier, assigned by the store at creation.
	FirstName    string    // Display attribute, no uniqueness constraint.
	LastName     string    // Display attribute, no uniqueness constraint.
	MobileNo     string    // Unique lookup key used for login.
	Email        string    // Secondary unique attribute; lookup supported but login keys on MobileNo.
	PasswordHash string    // bcrypt hash of the current credential. Never the plaintext, never logged.
	RememberMe   bool      // Latest "stay signed in" choice; overwritten on every login.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
