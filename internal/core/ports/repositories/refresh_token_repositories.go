package repositories

import (
	"context"

	"github.com/oclock/event_backend/internal/core/domain"
)

// RefreshTokenRepository persists refresh tokens keyed by the SHA-256
// hash of the opaque token string.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
