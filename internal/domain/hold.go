package domain

import "time"

type HoldStatus string

const (
	HoldStatusActive   HoldStatus = "active"
	HoldStatusConsumed HoldStatus = "consumed"
	HoldStatusExpired  HoldStatus = "expired"
	HoldStatusReleased HoldStatus = "released"
)

var ActiveHoldStatuses = []HoldStatus{HoldStatusActive}

// ReservationHold is a time-boxed exclusive claim on a date range. It blocks
// overlapping holds and bookings until it is consumed, released, or its TTL
// elapses. The price quoted at creation is snapshotted so finalize can
// cross-check the payment confirmation.
type ReservationHold struct {
	ID               string            `json:"id"`
	ResourceID       string            `json:"resource_id"`
	Range            DateRange         `json:"range"`
	HolderID         string            `json:"holder_id"`
	Status           HoldStatus        `json:"status"`
	QuotedPriceCents int64             `json:"quoted_price_cents"`
	AppliedDiscounts []AppliedDiscount `json:"applied_discounts"`
	CreatedAt        time.Time         `json:"created_at"`
	ExpiresAt        time.Time         `json:"expires_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ExpiredAt reports whether the hold's TTL has elapsed at now. A hold whose
// stored status is still active but whose TTL has run out is expired for
// every reader, regardless of whether the sweep has flipped the row yet.
func (h *ReservationHold) ExpiredAt(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// EffectiveStatus is the status a reader must act on at now (lazy expiry).
func (h *ReservationHold) EffectiveStatus(now time.Time) HoldStatus {
	if h.Status == HoldStatusActive && h.ExpiredAt(now) {
		return HoldStatusExpired
	}
	return h.Status
}

type CreateHoldInput struct {
	ResourceID       string
	Range            DateRange
	HolderID         string
	DemandMultiplier float64
}
