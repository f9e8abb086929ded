package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BlockingBookingStatuses are the statuses that keep calendar days blocked.
var BlockingBookingStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}

// Booking is created only by the finalizer, from a consumed hold.
type Booking struct {
	ID               string            `json:"id"`
	ResourceID       string            `json:"resource_id"`
	Range            DateRange         `json:"range"`
	HolderID         string            `json:"holder_id"`
	FinalPriceCents  int64             `json:"final_price_cents"`
	AppliedDiscounts []AppliedDiscount `json:"applied_discounts"`
	PaymentReference string            `json:"payment_reference"`
	Status           BookingStatus     `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// PaymentConfirmation is what the external payment collaborator presents to
// finalize a hold. It must reference the hold and match its quoted amount.
type PaymentConfirmation struct {
	Reference   string `json:"reference"`
	HoldID      string `json:"hold_id"`
	AmountCents int64  `json:"amount_cents"`
}
