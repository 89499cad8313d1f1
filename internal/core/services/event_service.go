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
)

// EventService implements the event mutation workflow: creation with
// location/sponsor reconciliation, partial updates, sponsor set
// management and ownership-checked deletion.
type EventService struct {
	eventRepo    portsrepo.EventRepository
	userRepo     portsrepo.UserRepository
	locationRepo portsrepo.EventLocationRepository
	sponsorRepo  portsrepo.SponsorRepository
	tx           portsrepo.TxManager
}

// NewEventService creates a new EventService.
func NewEventService(
	eventRepo portsrepo.EventRepository,
	userRepo portsrepo.UserRepository,
	locationRepo portsrepo.EventLocationRepository,
	sponsorRepo portsrepo.SponsorRepository,
	tx portsrepo.TxManager,
) portssvc.EventSvcFacade {
	return &EventService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		sponsorRepo:  sponsorRepo,
		tx:           tx,
	}
}

var _ portssvc.EventSvcFacade = (*EventService)(nil)

// CreateEvent resolves the acting manager and the event's location and
// sponsors (reusing rows by id, creating the rest) and persists the
// whole graph in one transaction.
func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, managerEmail string) (*dto.EventResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	manager, err := s.getUserByEmail(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	category, err := domain.CategoryFromDisplayName(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: the category '%s' does not exist", apperrors.ErrFunctional, req.Category)
	}

	event := domain.Event{
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Price:       req.Price,
		Category:    category,
		Manager:     *manager,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		location, err := s.resolveLocation(ctx, req.Location)
		if err != nil {
			return err
		}
		event.Location = *location

		sponsors, err := s.resolveSponsors(ctx, req.Sponsors)
		if err != nil {
			return err
		}
		event.Sponsors = sponsors

		eventID, err := s.eventRepo.SaveEvent(ctx, event)
		if err != nil {
			return err
		}
		event.ID = eventID
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDatabaseConstraint) {
			logger.Error("Event creation hit a database constraint", slog.String("error", err.Error()))
		}
		return nil, err
	}

	resp := dto.ToEventResponse(&event)
	return &resp, nil
}

// GetEventByID returns a single event or ErrNotFound.
func (s *EventService) GetEventByID(ctx context.Context, eventID int64) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// GetAllEvents returns every event.
func (s *EventService) GetAllEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.FindAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return dto.ToEventResponseSlice(events), nil
}

// GetEventsByCategory returns the events in a category, resolved from
// its display name.
func (s *EventService) GetEventsByCategory(ctx context.Context, categoryDisplayName string) ([]dto.EventResponse, error) {
	category, err := domain.CategoryFromDisplayName(categoryDisplayName)
	if err != nil {
		return nil, fmt.Errorf("%w: the category '%s' does not exist", apperrors.ErrFunctional, categoryDisplayName)
	}

	events, err := s.eventRepo.FindEventsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by category: %w", err)
	}
	return dto.ToEventResponseSlice(events), nil
}

// GetEventsByLocation returns the events held at a location. An
// unknown location yields an empty set.
func (s *EventService) GetEventsByLocation(ctx context.Context, locationID int64) ([]dto.EventResponse, error) {
	if _, err := s.locationRepo.FindLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []dto.EventResponse{}, nil
		}
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}

	events, err := s.eventRepo.FindEventsByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by location: %w", err)
	}
	return dto.ToEventResponseSlice(events), nil
}

// GetEventsByManager returns the events owned by a manager. An unknown
// manager yields an empty set.
func (s *EventService) GetEventsByManager(ctx context.Context, managerID string) ([]dto.EventResponse, error) {
	if _, err := s.userRepo.FindUserByID(ctx, managerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []dto.EventResponse{}, nil
		}
		return nil, fmt.Errorf("failed to look up manager: %w", err)
	}

	events, err := s.eventRepo.FindEventsByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by manager: %w", err)
	}
	return dto.ToEventResponseSlice(events), nil
}

// GetEventsByDateRange returns events starting inside the range. Both
// bounds are mandatory and validated before the repository is touched.
func (s *EventService) GetEventsByDateRange(ctx context.Context, startDate, endDate *time.Time) ([]dto.EventResponse, error) {
	if startDate == nil || endDate == nil {
		return nil, fmt.Errorf("%w: both startDate and endDate must be provided", apperrors.ErrFunctional)
	}
	if startDate.After(*endDate) {
		return nil, fmt.Errorf("%w: startDate must be before endDate", apperrors.ErrFunctional)
	}

	events, err := s.eventRepo.FindEventsByStartDateBetween(ctx, *startDate, *endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by date range: %w", err)
	}
	return dto.ToEventResponseSlice(events), nil
}

// UpdateEventByID applies a partial update: non-nil request fields
// overwrite stored values, the manager and creation time never change.
func (s *EventService) UpdateEventByID(ctx context.Context, eventID int64, req dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Category != nil {
		category, err := domain.CategoryFromDisplayName(*req.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: the category '%s' does not exist", apperrors.ErrFunctional, *req.Category)
		}
		event.Category = category
	}

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// UpdateSponsors refreshes the event's sponsor set. Every supplied
// sponsor must already exist and already be associated with the event;
// membership changes go through Add/RemoveSponsors instead.
func (s *EventService) UpdateSponsors(ctx context.Context, eventID int64, sponsors []dto.SponsorDto) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sponsorIDs := make([]int64, 0, len(sponsors))
		for _, sponsorDto := range sponsors {
			if sponsorDto.ID == nil {
				return fmt.Errorf("%w: sponsor id is required", apperrors.ErrFunctional)
			}
			if _, err := s.sponsorRepo.FindSponsorByID(ctx, *sponsorDto.ID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: sponsor with id %d does not exist", apperrors.ErrFunctional, *sponsorDto.ID)
				}
				return fmt.Errorf("failed to look up sponsor: %w", err)
			}
			if !event.HasSponsor(*sponsorDto.ID) {
				return fmt.Errorf("%w: sponsor with id %d is not associated with this event", apperrors.ErrFunctional, *sponsorDto.ID)
			}

			updated := domain.Sponsor{
				ID:          *sponsorDto.ID,
				Name:        sponsorDto.Name,
				Description: sponsorDto.Description,
				Logo:        sponsorDto.Logo,
			}
			if err := s.sponsorRepo.UpdateSponsor(ctx, updated); err != nil {
				return fmt.Errorf("failed to update sponsor: %w", err)
			}
			sponsorIDs = append(sponsorIDs, *sponsorDto.ID)
		}

		return s.eventRepo.ReplaceEventSponsors(ctx, eventID, sponsorIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetEventByID(ctx, eventID)
}

// AddSponsorsToEvent reconciles each supplied sponsor (reuse by id or
// create new) and unions them into the event's sponsor set.
func (s *EventService) AddSponsorsToEvent(ctx context.Context, eventID int64, sponsors []dto.SponsorDto) (*dto.EventResponse, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		resolved, err := s.resolveSponsors(ctx, sponsors)
		if err != nil {
			return err
		}

		sponsorIDs := make([]int64, len(resolved))
		for i, sp := range resolved {
			sponsorIDs[i] = sp.ID
		}
		return s.eventRepo.AddEventSponsors(ctx, eventID, sponsorIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetEventByID(ctx, eventID)
}

// RemoveSponsorsFromEvent subtracts the resolved sponsors from the
// event's set. Every id must name an existing sponsor.
func (s *EventService) RemoveSponsorsFromEvent(ctx context.Context, eventID int64, sponsorIDs []int64) (*dto.EventResponse, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, sponsorID := range sponsorIDs {
			if _, err := s.sponsorRepo.FindSponsorByID(ctx, sponsorID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: sponsor with id %d does not exist", apperrors.ErrFunctional, sponsorID)
				}
				return fmt.Errorf("failed to look up sponsor: %w", err)
			}
		}
		return s.eventRepo.RemoveEventSponsors(ctx, eventID, sponsorIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetEventByID(ctx, eventID)
}

// UpdateEventLocation reuses-and-merges when the supplied id matches an
// existing location, creates a new one otherwise, and attaches the
// result to the event.
func (s *EventService) UpdateEventLocation(ctx context.Context, eventID int64, location dto.EventLocationDto) (*dto.EventResponse, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var locationID int64

		existing, err := s.findLocationForUpdate(ctx, location)
		if err != nil {
			return err
		}

		if existing != nil {
			merged := mergeLocation(*existing, location)
			if err := s.locationRepo.UpdateLocation(ctx, merged); err != nil {
				return fmt.Errorf("failed to update location: %w", err)
			}
			locationID = merged.ID
		} else {
			locationID, err = s.locationRepo.SaveLocation(ctx, domain.EventLocation{
				Name:       location.Name,
				Address:    location.Address,
				City:       location.City,
				Country:    location.Country,
				PostalCode: location.PostalCode,
			})
			if err != nil {
				return fmt.Errorf("failed to save location: %w", err)
			}
		}

		return s.eventRepo.UpdateEventLocationRef(ctx, eventID, locationID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetEventByID(ctx, eventID)
}

// DeleteManagerEventByID deletes an event on behalf of its owning
// manager; any other acting user fails the ownership check.
func (s *EventService) DeleteManagerEventByID(ctx context.Context, eventID int64, actingEmail string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if event.Manager.Email != actingEmail {
		logger.Warn("Event delete refused: not the owning manager",
			slog.Int64("event_id", eventID),
			slog.String("acting_email", actingEmail),
		)
		return fmt.Errorf("%w: you are not authorized to delete this event", apperrors.ErrBadCredentials)
	}

	return s.eventRepo.DeleteEventByID(ctx, eventID)
}

// DeleteEventByID deletes any event after an existence check. Reserved
// for admins; the route enforces the role.
func (s *EventService) DeleteEventByID(ctx context.Context, eventID int64) error {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.DeleteEventByID(ctx, eventID)
}

func (s *EventService) getEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: event not found with id: %d", apperrors.ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

func (s *EventService) getUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found with email: %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// resolveLocation reuses an existing location when the id is supplied
// and found, and persists a freshly built one otherwise.
func (s *EventService) resolveLocation(ctx context.Context, locationDto dto.EventLocationDto) (*domain.EventLocation, error) {
	if locationDto.ID != nil {
		location, err := s.locationRepo.FindLocationByID(ctx, *locationDto.ID)
		if err == nil {
			return location, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up location: %w", err)
		}
	}

	location := domain.EventLocation{
		Name:       locationDto.Name,
		Address:    locationDto.Address,
		City:       locationDto.City,
		Country:    locationDto.Country,
		PostalCode: locationDto.PostalCode,
	}
	locationID, err := s.locationRepo.SaveLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	location.ID = locationID
	return &location, nil
}

// resolveSponsors reconciles each sponsor reference: reuse by id when
// found, create otherwise. Duplicate ids collapse into one entry.
func (s *EventService) resolveSponsors(ctx context.Context, sponsorDtos []dto.SponsorDto) ([]domain.Sponsor, error) {
	resolved := make([]domain.Sponsor, 0, len(sponsorDtos))
	seen := make(map[int64]bool, len(sponsorDtos))

	for _, sponsorDto := range sponsorDtos {
		if sponsorDto.ID != nil {
			sponsor, err := s.sponsorRepo.FindSponsorByID(ctx, *sponsorDto.ID)
			if err == nil {
				if !seen[sponsor.ID] {
					seen[sponsor.ID] = true
					resolved = append(resolved, *sponsor)
				}
				continue
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to look up sponsor: %w", err)
			}
		}

		sponsor := domain.Sponsor{
			Name:        sponsorDto.Name,
			Description: sponsorDto.Description,
			Logo:        sponsorDto.Logo,
		}
		sponsorID, err := s.sponsorRepo.SaveSponsor(ctx, sponsor)
		if err != nil {
			return nil, fmt.Errorf("failed to save sponsor: %w", err)
		}
		sponsor.ID = sponsorID
		seen[sponsorID] = true
		resolved = append(resolved, sponsor)
	}

	return resolved, nil
}

// findLocationForUpdate returns the existing location for a merge, or
// nil when the dto carries no id or the id is unknown.
func (s *EventService) findLocationForUpdate(ctx context.Context, locationDto dto.EventLocationDto) (*domain.EventLocation, error) {
	if locationDto.ID == nil {
		return nil, nil
	}
	location, err := s.locationRepo.FindLocationByID(ctx, *locationDto.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}
	return location, nil
}

// mergeLocation overlays the non-empty dto fields onto the stored row.
func mergeLocation(existing domain.EventLocation, locationDto dto.EventLocationDto) domain.EventLocation {
	if locationDto.Name != "" {
		existing.Name = locationDto.Name
	}
	if locationDto.Address != "" {
		existing.Address = locationDto.Address
	}
	if locationDto.City != "" {
		existing.City = locationDto.City
	}
	if locationDto.Country != "" {
		existing.Country = locationDto.Country
	}
	if locationDto.PostalCode != "" {
		existing.PostalCode = locationDto.PostalCode
	}
	return existing
}
