package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/models"
	"github.com/oclock/event_backend/internal/utils/mapping"

	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(pool *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
        INSERT INTO refresh_tokens (token_hash, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.q(ctx).Exec(ctx, query, token.TokenHash, token.UserID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
        SELECT token_hash, user_id, expires_at, created_at
        FROM refresh_tokens
        WHERE token_hash = $1;
    `
	var m models.RefreshToken
	err := r.q(ctx).QueryRow(ctx, query, tokenHash).Scan(&m.TokenHash, &m.UserID, &m.ExpiresAt, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	t := mapping.ToDomainRefreshToken(m)
	return &t, nil
}

func (r *PgxRefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1;`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
