package mapping

import (
	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/models"
)

// ToModelEvent converts a domain.Event to its flat database row.
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:     d.ID,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Price:       d.Price,
		Category:    string(d.Category),
		ManagerID:   d.Manager.UserID,
		LocationID:  d.Location.ID,
	}
}

// ToDomainLocation converts a models.EventLocation to the domain type.
func ToDomainLocation(m models.EventLocation) domain.EventLocation {
	return domain.EventLocation{
		ID:         m.LocationID,
		Name:       m.Name,
		Address:    m.Address,
		City:       m.City,
		Country:    m.Country,
		PostalCode: m.PostalCode,
	}
}

// ToModelLocation converts a domain.EventLocation to its database row.
func ToModelLocation(d domain.EventLocation) models.EventLocation {
	return models.EventLocation{
		LocationID: d.ID,
		Name:       d.Name,
		Address:    d.Address,
		City:       d.City,
		Country:    d.Country,
		PostalCode: d.PostalCode,
	}
}

// ToDomainSponsor converts a models.Sponsor to the domain type.
func ToDomainSponsor(m models.Sponsor) domain.Sponsor {
	return domain.Sponsor{
		ID:          m.SponsorID,
		Name:        m.Name,
		Description: m.Description,
		Logo:        m.Logo,
	}
}

// ToModelSponsor converts a domain.Sponsor to its database row.
func ToModelSponsor(d domain.Sponsor) models.Sponsor {
	return models.Sponsor{
		SponsorID:   d.ID,
		Name:        d.Name,
		Description: d.Description,
		Logo:        d.Logo,
	}
}

// ToDomainRefreshToken converts a models.RefreshToken to the domain type.
func ToDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		TokenHash: m.TokenHash,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
