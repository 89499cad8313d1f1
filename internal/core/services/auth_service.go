package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"
	"github.com/oclock/event_backend/internal/platform/config"
	"github.com/oclock/event_backend/internal/utils"
)

// AuthService handles registration, login and principal resolution.
type AuthService struct {
	cfg             *config.Config
	userRepo        portsrepo.UserRepository
	refreshTokenSvc portssvc.RefreshTokenSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, refreshTokenSvc portssvc.RefreshTokenSvcFacade) portssvc.AuthSvcFacade {
	return &AuthService{
		cfg:             cfg,
		userRepo:        userRepo,
		refreshTokenSvc: refreshTokenSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Register creates a new participant (or, when requested, manager or
// admin) account. The password is stored bcrypt-hashed only.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.ProfileResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrEmptyInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrEmptyInput)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email", slog.String("email", req.Email))
		return nil, fmt.Errorf("%w: user with email %s already exists", apperrors.ErrFunctional, req.Email)
	}

	role := domain.RoleParticipant
	if req.Role != "" {
		role, err = domain.ParseRole(req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrBadRequest, err)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	resp := dto.ToProfileResponse(&user)
	return &resp, nil
}

// Login verifies credentials and returns an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, req dto.AuthRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrEmptyInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrEmptyInput)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrFunctional)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrFunctional)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrFunctional)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	accessToken, err := utils.GenerateJWT(user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.refreshTokenSvc.CreateRefreshToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ResolveUserByEmail loads a principal by email for the authentication
// gate and for handlers acting on the current user.
func (s *AuthService) ResolveUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to resolve user by email: %w", err)
	}
	return user, nil
}
