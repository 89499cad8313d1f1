package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the database representation of an event row. Manager,
// location and sponsors are joined in by the repository.
type Event struct {
	EventID     int64           `db:"event_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	Price       decimal.Decimal `db:"price"`
	Category    string          `db:"category"`
	ManagerID   string          `db:"user_id"`
	LocationID  int64           `db:"event_location_id"`
}

// EventLocation is the database representation of a location row.
type EventLocation struct {
	LocationID int64  `db:"event_location_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	City       string `db:"city"`
	Country    string `db:"country"`
	PostalCode string `db:"postal_code"`
}

// Sponsor is the database representation of a sponsor row.
type Sponsor struct {
	SponsorID   int64  `db:"sponsor_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Logo        string `db:"logo"`
}
