package domain

import "time"

type RuleType string

const (
	RuleMultiDay   RuleType = "multi_day"
	RuleEarlyBird  RuleType = "early_bird"
	RuleLastMinute RuleType = "last_minute"
	RuleSeasonal   RuleType = "seasonal"
)

// BookingRule is a discount configured by the resource owner. A rule with an
// empty ResourceID is global. Lower Priority wins within a rule type.
type BookingRule struct {
	ID                 string     `json:"id"`
	ResourceID         string     `json:"resource_id,omitempty"`
	Name               string     `json:"name" validate:"required"`
	RuleType           RuleType   `json:"rule_type" validate:"required,oneof=multi_day early_bird last_minute seasonal"`
	DiscountPercentage float64    `json:"discount_percentage" validate:"gte=0,lte=100"`
	MinimumDays        *int       `json:"minimum_days,omitempty" validate:"omitempty,gt=0"`
	MaximumDays        *int       `json:"maximum_days,omitempty" validate:"omitempty,gt=0"`
	AdvanceBookingDays *int       `json:"advance_booking_days,omitempty" validate:"omitempty,gte=0"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidTo            *time.Time `json:"valid_to,omitempty"`
	Priority           int        `json:"priority"`
	Active             bool       `json:"active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// AppliedDiscount is one rule selected by the engine for a concrete range.
type AppliedDiscount struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// DiscountResult is the engine output: the kept rules in ascending priority
// order and their summed percentage after the stacking cap.
type DiscountResult struct {
	Applied         []AppliedDiscount `json:"applied"`
	TotalPercentage float64           `json:"total_percentage"`
}
