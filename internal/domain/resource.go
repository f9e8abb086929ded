package domain

import "time"

// Resource is a rentable unit (a boat). It carries the default daily price
// the calendar falls back to for days without an explicit record, and the
// maximum advance-booking window enforced at hold creation.
type Resource struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	DailyPriceCents int64     `json:"daily_price_cents"`
	Currency        string    `json:"currency"`
	MaxAdvanceDays  int       `json:"max_advance_days"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateResourceInput struct {
	OwnerID         string
	Name            string
	DailyPriceCents int64
	Currency        string
	MaxAdvanceDays  int
}
