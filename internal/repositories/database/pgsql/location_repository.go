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

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.EventLocationRepository {
	return &PgxLocationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EventLocationRepository = (*PgxLocationRepository)(nil)

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.EventLocation) (int64, error) {
	m := mapping.ToModelLocation(location)
	query := `
        INSERT INTO event_locations (name, address, city, country, postal_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING event_location_id;
    `
	var locationID int64
	err := r.q(ctx).QueryRow(ctx, query, m.Name, m.Address, m.City, m.Country, m.PostalCode).Scan(&locationID)
	if err != nil {
		return 0, fmt.Errorf("failed to save location: %w", mapPgError(err))
	}
	return locationID, nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.EventLocation, error) {
	query := `
        SELECT event_location_id, name, address, city, country, postal_code
        FROM event_locations
        WHERE event_location_id = $1;
    `
	var m models.EventLocation
	err := r.q(ctx).QueryRow(ctx, query, locationID).Scan(&m.LocationID, &m.Name, &m.Address, &m.City, &m.Country, &m.PostalCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %d: %w", locationID, err)
	}
	l := mapping.ToDomainLocation(m)
	return &l, nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.EventLocation) error {
	m := mapping.ToModelLocation(location)
	query := `
        UPDATE event_locations
        SET name = $2, address = $3, city = $4, country = $5, postal_code = $6
        WHERE event_location_id = $1;
    `
	tag, err := r.q(ctx).Exec(ctx, query, m.LocationID, m.Name, m.Address, m.City, m.Country, m.PostalCode)
	if err != nil {
		return fmt.Errorf("failed to update location %d: %w", m.LocationID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
