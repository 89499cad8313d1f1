package repositories

import (
	"context"
	"time"

	"github.com/oclock/event_backend/internal/core/domain"
)

// EventRepository persists events together with their manager,
// location and sponsor associations.
type EventRepository interface {
	// SaveEvent inserts the event row and its sponsor join rows and
	// returns the assigned id.
	SaveEvent(ctx context.Context, event domain.Event) (int64, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error)
	FindAllEvents(ctx context.Context) ([]domain.Event, error)
	FindEventsByCategory(ctx context.Context, category domain.EventCategory) ([]domain.Event, error)
	FindEventsByLocation(ctx context.Context, locationID int64) ([]domain.Event, error)
	FindEventsByManager(ctx context.Context, managerID string) ([]domain.Event, error)
	FindEventsByStartDateBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error)
	ReplaceEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error
	AddEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error
	RemoveEventSponsors(ctx context.Context, eventID int64, sponsorIDs []int64) error
	UpdateEventLocationRef(ctx context.Context, eventID int64, locationID int64) error
	DeleteEventByID(ctx context.Context, eventID int64) error
}

// EventLocationRepository persists the shared location reference data.
type EventLocationRepository interface {
	SaveLocation(ctx context.Context, location domain.EventLocation) (int64, error)
	FindLocationByID(ctx context.Context, locationID int64) (*domain.EventLocation, error)
	UpdateLocation(ctx context.Context, location domain.EventLocation) error
}

// SponsorRepository persists the shared sponsor reference data.
type SponsorRepository interface {
	SaveSponsor(ctx context.Context, sponsor domain.Sponsor) (int64, error)
	FindSponsorByID(ctx context.Context, sponsorID int64) (*domain.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor domain.Sponsor) error
}
