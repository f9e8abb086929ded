package dto

import (
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type CreateResourceRequest struct {
	OwnerID         string `json:"owner_id" binding:"required,uuid"`
	Name            string `json:"name" binding:"required"`
	DailyPriceCents int64  `json:"daily_price_cents" binding:"required,gt=0"`
	Currency        string `json:"currency"`
	MaxAdvanceDays  int    `json:"max_advance_days" binding:"gte=0"`
}

type CreateHoldRequest struct {
	StartDate        string  `json:"start_date" binding:"required"`
	EndDate          string  `json:"end_date" binding:"required"`
	HolderID         string  `json:"holder_id" binding:"required,uuid"`
	DemandMultiplier float64 `json:"demand_multiplier" binding:"gte=0"`
}

type FinalizeRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
	AmountCents      int64  `json:"amount_cents" binding:"required,gt=0"`
}

type ReleaseHoldRequest struct {
	HolderID string `json:"holder_id" binding:"required,uuid"`
}

type SetAvailabilityRequest struct {
	Available       *bool    `json:"available"`
	BasePriceCents  *int64   `json:"base_price_cents"`
	Season          *string  `json:"season" binding:"omitempty,oneof=low medium high"`
	PriceMultiplier *float64 `json:"price_multiplier"`
	BlockReason     *string  `json:"block_reason"`
	Notes           *string  `json:"notes"`
}

func (r SetAvailabilityRequest) ToInput() domain.UpdateAvailabilityInput {
	input := domain.UpdateAvailabilityInput{
		Available:       r.Available,
		BasePriceCents:  r.BasePriceCents,
		PriceMultiplier: r.PriceMultiplier,
		Notes:           r.Notes,
	}
	if r.Season != nil {
		season := domain.SeasonType(*r.Season)
		input.Season = &season
	}
	if r.BlockReason != nil {
		reason := domain.BlockReason(*r.BlockReason)
		input.BlockReason = &reason
	}
	return input
}

type UpsertRuleRequest struct {
	ID                 string  `json:"id" binding:"omitempty,uuid"`
	Name               string  `json:"name" binding:"required"`
	RuleType           string  `json:"rule_type" binding:"required,oneof=multi_day early_bird last_minute seasonal"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"gte=0,lte=100"`
	MinimumDays        *int    `json:"minimum_days"`
	MaximumDays        *int    `json:"maximum_days"`
	AdvanceBookingDays *int    `json:"advance_booking_days"`
	ValidFrom          *string `json:"valid_from"`
	ValidTo            *string `json:"valid_to"`
	Priority           int     `json:"priority"`
	Active             bool    `json:"active"`
}

func (r UpsertRuleRequest) ToRule(resourceID string) (*domain.BookingRule, error) {
	rule := &domain.BookingRule{
		ID:                 r.ID,
		ResourceID:         resourceID,
		Name:               r.Name,
		RuleType:           domain.RuleType(r.RuleType),
		DiscountPercentage: r.DiscountPercentage,
		MinimumDays:        r.MinimumDays,
		MaximumDays:        r.MaximumDays,
		AdvanceBookingDays: r.AdvanceBookingDays,
		Priority:           r.Priority,
		Active:             r.Active,
	}

	if r.ValidFrom != nil {
		from, err := ParseDate(*r.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("valid_from: %w", err)
		}
		rule.ValidFrom = &from
	}
	if r.ValidTo != nil {
		to, err := ParseDate(*r.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("valid_to: %w", err)
		}
		rule.ValidTo = &to
	}

	return rule, nil
}

// ParseDate parses a calendar day in 2006-01-02 form into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// ParseRange builds a validated half-open date range from from/to strings.
func ParseRange(from, to string) (domain.DateRange, error) {
	start, err := ParseDate(from)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(start, end), nil
}
