// Package reset holds the stand-in for the external password-reset
// collaborator. The real delivery channel (reset email or SMS) is owned by
// another team; this implementation only records that a reset was requested.
package reset

import (
	"context"
	"log/slog"

	"coursepass/internal/domain/service"
)

type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher is the constructor for the logging dispatcher.
func NewLogDispatcher(logger *slog.Logger) service.PasswordResetDispatcher {
	return &logDispatcher{logger: logger}
}

// Dispatch records the reset request. It deliberately succeeds whether or
// not the mobile number belongs to an account, so the endpoint reveals
// nothing about registered users.
func (d *logDispatcher) Dispatch(ctx context.Context, mobileNo string) error {
	d.logger.InfoContext(ctx, "Password reset requested", slog.String("mobile_no", mobileNo))

	return nil
}
