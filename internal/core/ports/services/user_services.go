package services

import (
	"context"

	"github.com/oclock/event_backend/internal/dto"
)

// UserSvcFacade covers profile management for authenticated users and
// the administrative user listing.
type UserSvcFacade interface {
	GetUserProfileByEmail(ctx context.Context, email string) (*dto.ProfileResponse, error)
	GetAllUsers(ctx context.Context) ([]dto.ProfileResponse, error)
	UpdateUserProfile(ctx context.Context, email string, req dto.ProfileRequest) (*dto.ProfileResponse, error)
	UpdatePassword(ctx context.Context, email string, req dto.UpdatePasswordRequest) error
	UpdateEmail(ctx context.Context, currentEmail, newEmail string) error
	GetEventParticipantsForManager(ctx context.Context, eventID int64, managerEmail string) ([]dto.ProfileResponse, error)
}

// EmailSender delivers account verification mail. The in-tree
// implementation is a logging stub.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, email string, newEmail string) error
}
