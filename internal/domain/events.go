package domain

import "time"

// Event is a domain event emitted by the core for external collaborators
// (UI invalidation, notifications). Collaborators only observe; they never
// mutate calendar or hold state.
type Event interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

type HoldCreated struct {
	HoldID     string
	ResourceID string
	Range      DateRange
	HolderID   string
	ExpiresAt  time.Time
	At         time.Time
}

func (e HoldCreated) EventName() string     { return "hold.created" }
func (e HoldCreated) AggregateID() string   { return e.ResourceID }
func (e HoldCreated) OccurredAt() time.Time { return e.At }

type HoldReleased struct {
	HoldID     string
	ResourceID string
	Range      DateRange
	At         time.Time
}

func (e HoldReleased) EventName() string     { return "hold.released" }
func (e HoldReleased) AggregateID() string   { return e.ResourceID }
func (e HoldReleased) OccurredAt() time.Time { return e.At }

type HoldExpired struct {
	HoldID     string
	ResourceID string
	Range      DateRange
	At         time.Time
}

func (e HoldExpired) EventName() string     { return "hold.expired" }
func (e HoldExpired) AggregateID() string   { return e.ResourceID }
func (e HoldExpired) OccurredAt() time.Time { return e.At }

type BookingConfirmed struct {
	BookingID  string
	ResourceID string
	Range      DateRange
	HolderID   string
	PriceCents int64
	At         time.Time
}

func (e BookingConfirmed) EventName() string     { return "booking.confirmed" }
func (e BookingConfirmed) AggregateID() string   { return e.ResourceID }
func (e BookingConfirmed) OccurredAt() time.Time { return e.At }
