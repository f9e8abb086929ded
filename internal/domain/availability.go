package domain

import "time"

type SeasonType string

const (
	SeasonLow    SeasonType = "low"
	SeasonMedium SeasonType = "medium"
	SeasonHigh   SeasonType = "high"
)

type BlockReason string

const (
	BlockReasonBooking BlockReason = "booking"
	BlockReasonOwner   BlockReason = "owner_block"
)

// AvailabilityDay is the per-resource, per-day calendar record. Days without
// a stored record are synthesized with the resource defaults: available,
// medium season, multiplier 1.0, base price = resource daily price.
type AvailabilityDay struct {
	ResourceID      string      `json:"resource_id"`
	Day             time.Time   `json:"day"`
	Available       bool        `json:"available"`
	BasePriceCents  int64       `json:"base_price_cents"`
	Season          SeasonType  `json:"season"`
	PriceMultiplier float64     `json:"price_multiplier"`
	BlockReason     BlockReason `json:"block_reason,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// DefaultDay synthesizes the record for a day with no stored row.
func DefaultDay(r *Resource, day time.Time) *AvailabilityDay {
	return &AvailabilityDay{
		ResourceID:      r.ID,
		Day:             Midnight(day),
		Available:       true,
		BasePriceCents:  r.DailyPriceCents,
		Season:          SeasonMedium,
		PriceMultiplier: 1.0,
	}
}

// UpdateAvailabilityInput carries the owner-editable fields; nil means
// "leave unchanged".
type UpdateAvailabilityInput struct {
	Available       *bool
	BasePriceCents  *int64
	Season          *SeasonType
	PriceMultiplier *float64
	BlockReason     *BlockReason
	Notes           *string
}
