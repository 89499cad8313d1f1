package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/models"
	"github.com/oclock/event_backend/internal/utils/mapping"

	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
)

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

// eventSelect joins each event row with its manager and location so a single
// query yields everything except the sponsor list.
const eventSelect = `
    SELECT e.event_id, e.title, e.description, e.created_at, e.start_date, e.end_date, e.price, e.category,
           u.user_id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.last_login_at,
           l.event_location_id, l.name, l.address, l.city, l.country, l.postal_code
    FROM events e
    JOIN users u ON u.user_id = e.user_id
    JOIN event_locations l ON l.event_location_id = e.event_location_id
`

func scanJoinedEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	var manager models.User
	var location models.EventLocation
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.CreatedAt,
		&e.StartDate,
		&e.EndDate,
		&e.Price,
		&e.Category,
		&manager.UserID,
		&manager.Email,
		&manager.PasswordHash,
		&manager.FirstName,
		&manager.LastName,
		&manager.Role,
		&manager.IsActive,
		&manager.CreatedAt,
		&manager.LastLoginAt,
		&location.LocationID,
		&location.Name,
		&location.Address,
		&location.City,
		&location.Country,
		&location.PostalCode,
	)
	if err != nil {
		return nil, err
	}
	e.Manager = mapping.ToDomainUser(manager)
	e.Location = mapping.ToDomainLocation(location)
	return &e, nil
}

// loadSponsors attaches the sponsor list of each event in place.
func (r *PgxEventRepository) loadSponsors(ctx context.Context, events []*domain.Event) error {
	for _, e := range events {
		query := `
            SELECT s.sponsor_id, s.name, s.description, s.logo
            FROM sponsors s
            JOIN event_sponsors es ON es.sponsor_id = s.sponsor_id
            WHERE es.event_id = $1
            ORDER BY s.sponsor_id;
        `
		rows, err := r.q(ctx).Query(ctx, query, e.ID)
		if err != nil {
			return fmt.Errorf("failed to load sponsors for event %d: %w", e.ID, err)
		}
		var sponsors []domain.Sponsor
		for rows.Next() {
			var m models.Sponsor
			if err := rows.Scan(&m.SponsorID, &m.Name, &m.Description, &m.Logo); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan sponsor row: %w", err)
			}
			sponsors = append(sponsors, mapping.ToDomainSponsor(m))
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed reading sponsor rows: %w", err)
		}
		e.Sponsors = sponsors
	}
	return nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) (int64, error) {
	m := mapping.ToModelEvent(event)
	query := `
        INSERT INTO events (title, description, created_at, start_date, end_date, price, category, user_id, event_location_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING event_id;
    `
	var eventID int64
	err := r.q(ctx).QueryRow(ctx, query,
		m.Title,
		m.Description,
		m.CreatedAt,
		m.StartDate,
		m.EndDate,
		m.Price,
		m.Category,
		m.ManagerID,
		m.LocationID,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to save event: %w", mapPgError(err))
	}

	sponsorIDs := make([]int64, 0, len(event.Sponsors))
	for _, s := range event.Sponsors {
		sponsorIDs = append(sponsorIDs, s.ID)
	}
	if err := r.AddEventSponsors(ctx, eventID, sponsorIDs); err != nil {
		return 0, err
	}
	return eventID, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
        UPDATE events
        SET title = $2, description = $3, start_date = $4, end_date = $5, price = $6, category = $7
        WHERE event_id = $1;
    `
	tag, err := r.q(ctx).Exec(ctx, query, m.EventID, m.Title, m.Description, m.StartDate, m.EndDate, m.Price, m.Category)
	if err != nil {
		return fmt.Errorf("failed to update event %d: %w", m.EventID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := scanJoinedEvent(r.q(ctx).QueryRow(ctx, eventSelect+` WHERE e.event_id = $1;`, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %d: %w", eventID, err)
	}
	if err := r.loadSponsors(ctx, []*domain.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *PgxEventRepository) findEvents(ctx context.Context, where string, args ...any) ([]domain.Event, error) {
	rows, err := r.q(ctx).Query(ctx, eventSelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanJoinedEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading event rows: %w", err)
	}
	if err := r.loadSponsors(ctx, events); err != nil {
		return nil, err
	}

	result := make([]domain.Event, len(events))
	for i, e := range events {
		result[i] = *e
	}
	return result, nil
}

func (r *PgxEventRepository) FindAllEvents(ctx context.Context) ([]domain.Event, error) {
	return r.findEvents(ctx, ` ORDER BY e.start_date;`)
}

func (r *PgxEventRepository) FindEventsByCategory(ctx context.Context, category domain.EventCategory) ([]domain.Event, error) {
	return r.findEvents(ctx, ` WHERE e.category = $1 ORDER BY e.start_date;`, string(category))
}

func (r *PgxEventRepository) FindEventsByLocation(ctx context.Context, locationID int64) ([]domain.Event, error) {
	return r.findEvents(ctx, ` WHERE e.event_location_id = $1 ORDER BY e.start_date;`, locationID)
}

func (r *PgxEventRepository) FindEventsByManager(ctx context.Context, managerID string) ([]domain.Event, error) {
	return r.findEvents(ctx, ` WHERE e.user_id = $1 ORDER BY e.start_date;`, managerID)
}

func (r *PgxEventRepository) FindEventsByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	return r.findEvents(ctx, ` WHERE e.start_date BETWEEN $1 AND $2 ORDER BY e.start_date;`, start, end)
}

func (r *PgxEventRepository) ReplaceEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	if _, err := r.q(ctx).Exec(ctx, `DELETE FROM event_sponsors WHERE event_id = $1;`, eventID); err != nil {
		return fmt.Errorf("failed to clear sponsors for event %d: %w", eventID, err)
	}
	return r.AddEventSponsors(ctx, eventID, sponsorIDs)
}

func (r *PgxEventRepository) AddEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	for _, sponsorID := range sponsorIDs {
		query := `
            INSERT INTO event_sponsors (event_id, sponsor_id)
            VALUES ($1, $2)
            ON CONFLICT (event_id, sponsor_id) DO NOTHING;
        `
		if _, err := r.q(ctx).Exec(ctx, query, eventID, sponsorID); err != nil {
			return fmt.Errorf("failed to associate sponsor %d with event %d: %w", sponsorID, eventID, mapPgError(err))
		}
	}
	return nil
}

func (r *PgxEventRepository) RemoveEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error {
	for _, sponsorID := range sponsorIDs {
		query := `DELETE FROM event_sponsors WHERE event_id = $1 AND sponsor_id = $2;`
		if _, err := r.q(ctx).Exec(ctx, query, eventID, sponsorID); err != nil {
			return fmt.Errorf("failed to remove sponsor %d from event %d: %w", sponsorID, eventID, err)
		}
	}
	return nil
}

func (r *PgxEventRepository) UpdateEventLocationRef(ctx context.Context, eventID int64, locationID int64) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE events SET event_location_id = $2 WHERE event_id = $1;`, eventID, locationID)
	if err != nil {
		return fmt.Errorf("failed to move event %d to location %d: %w", eventID, locationID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) DeleteEventByID(ctx context.Context, eventID int64) error {
	if _, err := r.q(ctx).Exec(ctx, `DELETE FROM event_sponsors WHERE event_id = $1;`, eventID); err != nil {
		return fmt.Errorf("failed to clear sponsors for event %d: %w", eventID, err)
	}
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
