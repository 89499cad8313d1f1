package email

import (
	"context"
	"log/slog"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/middleware"
)

// LogSender is a stand-in mail transport that only logs the
// verification request. Real delivery is out of scope.
type LogSender struct{}

// NewLogSender creates the logging mail stub.
func NewLogSender() portssvc.EmailSender {
	return &LogSender{}
}

var _ portssvc.EmailSender = (*LogSender)(nil)

// SendVerificationEmail logs the would-be delivery and succeeds.
func (s *LogSender) SendVerificationEmail(ctx context.Context, email string, newEmail string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Verification email requested",
		slog.String("current_email", email),
		slog.String("new_email", newEmail),
	)
	return nil
}
