package services

import (
	"context"

	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/dto"
)

// AuthSvcFacade handles registration, credential verification and
// principal resolution for the authentication gate.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.ProfileResponse, error)
	Login(ctx context.Context, req dto.AuthRequest) (*dto.AuthResponse, error)
	ResolveUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RefreshTokenSvcFacade issues, exchanges and revokes refresh tokens.
type RefreshTokenSvcFacade interface {
	CreateRefreshToken(ctx context.Context, user *domain.User) (string, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
