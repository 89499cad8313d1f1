package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventLocation is shared reference data; events point at it by id and
// locations can be reused across events.
type EventLocation struct {
	ID         int64
	Name       string
	Address    string
	City       string
	Country    string
	PostalCode string
}

// Sponsor is shared reference data with a unique name.
type Sponsor struct {
	ID          int64
	Name        string
	Description string
	Logo        string
}

// Event is the central owned resource. The manager is immutable after
// creation and the sponsor set carries no duplicates.
type Event struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	StartDate   time.Time
	EndDate     time.Time
	Price       decimal.Decimal
	Category    EventCategory
	Manager     User
	Location    EventLocation
	Sponsors    []Sponsor
}

// HasSponsor reports whether the sponsor id is currently associated.
func (e Event) HasSponsor(sponsorID int64) bool {
	for _, s := range e.Sponsors {
		if s.ID == sponsorID {
			return true
		}
	}
	return false
}
