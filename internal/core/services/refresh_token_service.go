package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"
	"github.com/oclock/event_backend/internal/platform/config"
	"github.com/oclock/event_backend/internal/utils"
)

// RefreshTokenService issues opaque refresh tokens and exchanges them
// for new access tokens. Tokens are stored hashed; a login never
// invalidates earlier tokens for the same user.
type RefreshTokenService struct {
	cfg              *config.Config
	refreshTokenRepo portsrepo.RefreshTokenRepository
	userRepo         portsrepo.UserRepository
}

// NewRefreshTokenService creates a new RefreshTokenService.
func NewRefreshTokenService(cfg *config.Config, refreshTokenRepo portsrepo.RefreshTokenRepository, userRepo portsrepo.UserRepository) portssvc.RefreshTokenSvcFacade {
	return &RefreshTokenService{
		cfg:              cfg,
		refreshTokenRepo: refreshTokenRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.RefreshTokenSvcFacade = (*RefreshTokenService)(nil)

// CreateRefreshToken mints a new opaque token for the user, persists
// its hash with the configured validity window and returns the raw
// token string.
func (s *RefreshTokenService) CreateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	token := domain.RefreshToken{
		TokenHash: utils.HashRefreshToken(rawToken),
		UserID:    user.UserID,
		ExpiresAt: now.Add(s.cfg.RefreshTokenExpiryDuration),
		CreatedAt: now,
	}

	if err := s.refreshTokenRepo.SaveRefreshToken(ctx, token); err != nil {
		return "", fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return rawToken, nil
}

// RefreshAccessToken validates the presented refresh token and issues a
// fresh access token for its owner. The refresh token itself is echoed
// back unchanged.
func (s *RefreshTokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", apperrors.ErrEmptyInput)
	}

	stored, err := s.refreshTokenRepo.FindByTokenHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrFunctional)
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: expired refresh token", apperrors.ErrFunctional)
	}

	user, err := s.userRepo.FindUserByID(ctx, stored.UserID)
	if err != nil {
		logger.Error("Refresh token owner missing", slog.String("user_id", stored.UserID))
		return nil, fmt.Errorf("failed to resolve refresh token owner: %w", err)
	}

	accessToken, err := utils.GenerateJWT(user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RevokeRefreshToken deletes the token. Revoking an unknown (or
// already revoked) token fails with a functional error.
func (s *RefreshTokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("%w: refresh token is required", apperrors.ErrEmptyInput)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	if _, err := s.refreshTokenRepo.FindByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: invalid refresh token", apperrors.ErrFunctional)
		}
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
