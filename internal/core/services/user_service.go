package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oclock/event_backend/internal/apperrors"
	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"
	"github.com/oclock/event_backend/internal/utils"
)

// UserService handles profile management for the authenticated user and
// the admin user listing.
type UserService struct {
	userRepo    portsrepo.UserRepository
	emailSender portssvc.EmailSender
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, emailSender portssvc.EmailSender) portssvc.UserSvcFacade {
	return &UserService{
		userRepo:    userRepo,
		emailSender: emailSender,
	}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserProfileByEmail returns the public profile for an email.
func (s *UserService) GetUserProfileByEmail(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	resp := dto.ToProfileResponse(user)
	return &resp, nil
}

// GetAllUsers returns every profile. Admin only; the route enforces it.
func (s *UserService) GetAllUsers(ctx context.Context) ([]dto.ProfileResponse, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.ToProfileResponseSlice(users), nil
}

// UpdateUserProfile patches the user's name fields; nil request fields
// keep their stored values.
func (s *UserService) UpdateUserProfile(ctx context.Context, email string, req dto.ProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	resp := dto.ToProfileResponse(user)
	return &resp, nil
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *UserService) UpdatePassword(ctx context.Context, email string, req dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, email)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrBadCredentials)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateEmail checks the target address is free and sends a
// verification mail. The stored email only changes once the
// verification flow completes; delivery itself is stubbed.
func (s *UserService) UpdateEmail(ctx context.Context, currentEmail, newEmail string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, currentEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, currentEmail)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	taken, err := s.userRepo.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return fmt.Errorf("failed to check new email availability: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: email is already in use", apperrors.ErrBadRequest)
	}

	if err := s.emailSender.SendVerificationEmail(ctx, user.Email, newEmail); err != nil {
		logger.Error("Failed to send verification email", slog.String("error", err.Error()))
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// GetEventParticipantsForManager lists the participants of a manager's
// event. Participant registration is not modeled yet, so the set is
// always empty.
// TODO: populate once event registration lands (needs an attendance table).
func (s *UserService) GetEventParticipantsForManager(ctx context.Context, eventID int64, managerEmail string) ([]dto.ProfileResponse, error) {
	return []dto.ProfileResponse{}, nil
}
