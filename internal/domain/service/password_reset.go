package service

import "context"

// PasswordResetDispatcher is the external collaborator behind the
// forget-password route. Its delivery mechanism (reset email, SMS) lives
// outside this service; the core only hands over the identifier.
type PasswordResetDispatcher interface {
	// Dispatch asks the collaborator to start a reset flow for the given
	// mobile number. It reveals nothing about whether the account exists.
	Dispatch(ctx context.Context, mobileNo string) error
}
