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

type PgxSponsorRepository struct {
	BaseRepository
}

func newPgxSponsorRepository(pool *pgxpool.Pool) portsrepo.SponsorRepository {
	return &PgxSponsorRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SponsorRepository = (*PgxSponsorRepository)(nil)

func (r *PgxSponsorRepository) SaveSponsor(ctx context.Context, sponsor domain.Sponsor) (int64, error) {
	m := mapping.ToModelSponsor(sponsor)
	query := `
        INSERT INTO sponsors (name, description, logo)
        VALUES ($1, $2, $3)
        RETURNING sponsor_id;
    `
	var sponsorID int64
	err := r.q(ctx).QueryRow(ctx, query, m.Name, m.Description, m.Logo).Scan(&sponsorID)
	if err != nil {
		return 0, fmt.Errorf("failed to save sponsor: %w", mapPgError(err))
	}
	return sponsorID, nil
}

func (r *PgxSponsorRepository) FindSponsorByID(ctx context.Context, sponsorID int64) (*domain.Sponsor, error) {
	query := `SELECT sponsor_id, name, description, logo FROM sponsors WHERE sponsor_id = $1;`
	var m models.Sponsor
	err := r.q(ctx).QueryRow(ctx, query, sponsorID).Scan(&m.SponsorID, &m.Name, &m.Description, &m.Logo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sponsor %d: %w", sponsorID, err)
	}
	s := mapping.ToDomainSponsor(m)
	return &s, nil
}

func (r *PgxSponsorRepository) UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) error {
	m := mapping.ToModelSponsor(sponsor)
	query := `
        UPDATE sponsors
        SET name = $2, description = $3, logo = $4
        WHERE sponsor_id = $1;
    `
	tag, err := r.q(ctx).Exec(ctx, query, m.SponsorID, m.Name, m.Description, m.Logo)
	if err != nil {
		return fmt.Errorf("failed to update sponsor %d: %w", m.SponsorID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
