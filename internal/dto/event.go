package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oclock/event_backend/internal/core/domain"
)

// EventLocationDto references a location by id, or describes a new one
// when the id is absent.
type EventLocationDto struct {
	ID         *int64 `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// SponsorDto references a sponsor by id, or describes a new one when
// the id is absent.
type SponsorDto struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// CreateEventRequest carries a new event. Category is exchanged by its
// display name.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	StartDate   time.Time        `json:"startDate" binding:"required"`
	EndDate     time.Time        `json:"endDate" binding:"required"`
	Location    EventLocationDto `json:"location"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category" binding:"required"`
	Sponsors    []SponsorDto     `json:"sponsors"`
}

// UpdateEventRequest carries a partial event update; nil fields retain
// the stored values.
type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// RemoveSponsorsRequest carries the sponsor ids to detach.
type RemoveSponsorsRequest struct {
	SponsorIDs []int64 `json:"sponsorIds" binding:"required"`
}

// EventResponse is the public view of an event. Manager is the owning
// manager's full name; category is the display name.
type EventResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"createdAt"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Location    EventLocationDto `json:"location"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category"`
	Manager     string           `json:"manager"`
	Sponsors    []SponsorDto     `json:"sponsors"`
}

// ToEventResponse converts a domain.Event to its public view.
func ToEventResponse(e *domain.Event) EventResponse {
	sponsors := make([]SponsorDto, len(e.Sponsors))
	for i, s := range e.Sponsors {
		id := s.ID
		sponsors[i] = SponsorDto{
			ID:          &id,
			Name:        s.Name,
			Description: s.Description,
			Logo:        s.Logo,
		}
	}

	locationID := e.Location.ID
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location: EventLocationDto{
			ID:         &locationID,
			Name:       e.Location.Name,
			Address:    e.Location.Address,
			City:       e.Location.City,
			Country:    e.Location.Country,
			PostalCode: e.Location.PostalCode,
		},
		Price:    e.Price,
		Category: e.Category.DisplayName(),
		Manager:  e.Manager.FullName(),
		Sponsors: sponsors,
	}
}

// ToEventResponseSlice converts a slice of domain events.
func ToEventResponseSlice(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return out
}
