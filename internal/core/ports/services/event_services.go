package services

import (
	"context"
	"time"

	"github.com/oclock/event_backend/internal/dto"
)

// EventSvcFacade covers the event mutation workflow and all lookups.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, managerEmail string) (*dto.EventResponse, error)
	GetEventByID(ctx context.Context, eventID int64) (*dto.EventResponse, error)
	GetAllEvents(ctx context.Context) ([]dto.EventResponse, error)
	GetEventsByCategory(ctx context.Context, categoryDisplayName string) ([]dto.EventResponse, error)
	GetEventsByLocation(ctx context.Context, locationID int64) ([]dto.EventResponse, error)
	GetEventsByManager(ctx context.Context, managerID string) ([]dto.EventResponse, error)
	GetEventsByDateRange(ctx context.Context, startDate, endDate *time.Time) ([]dto.EventResponse, error)
	UpdateEventByID(ctx context.Context, eventID int64, req dto.UpdateEventRequest) (*dto.EventResponse, error)
	UpdateSponsors(ctx context.Context, eventID int64, sponsors []dto.SponsorDto) (*dto.EventResponse, error)
	AddSponsorsToEvent(ctx context.Context, eventID int64, sponsors []dto.SponsorDto) (*dto.EventResponse, error)
	RemoveSponsorsFromEvent(ctx context.Context, eventID int64, sponsorIDs []int64) (*dto.EventResponse, error)
	UpdateEventLocation(ctx context.Context, eventID int64, location dto.EventLocationDto) (*dto.EventResponse, error)
	DeleteManagerEventByID(ctx context.Context, eventID int64, actingEmail string) error
	DeleteEventByID(ctx context.Context, eventID int64) error
}
