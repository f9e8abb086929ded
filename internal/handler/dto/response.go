package dto

import (
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type ResourceResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	Name            string `json:"name"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	Currency        string `json:"currency"`
	MaxAdvanceDays  int    `json:"max_advance_days"`
	CreatedAt       string `json:"created_at"`
}

type AvailabilityDayResponse struct {
	Day             string  `json:"day"`
	Available       bool    `json:"available"`
	BasePriceCents  int64   `json:"base_price_cents"`
	Season          string  `json:"season"`
	PriceMultiplier float64 `json:"price_multiplier"`
	BlockReason     string  `json:"block_reason,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

type RuleResponse struct {
	ID                 string  `json:"id"`
	ResourceID         string  `json:"resource_id,omitempty"`
	Name               string  `json:"name"`
	RuleType           string  `json:"rule_type"`
	DiscountPercentage float64 `json:"discount_percentage"`
	MinimumDays        *int    `json:"minimum_days,omitempty"`
	MaximumDays        *int    `json:"maximum_days,omitempty"`
	AdvanceBookingDays *int    `json:"advance_booking_days,omitempty"`
	ValidFrom          *string `json:"valid_from,omitempty"`
	ValidTo            *string `json:"valid_to,omitempty"`
	Priority           int     `json:"priority"`
	Active             bool    `json:"active"`
}

type HoldResponse struct {
	ID               string                   `json:"hold_id"`
	ResourceID       string                   `json:"resource_id"`
	StartDate        string                   `json:"start_date"`
	EndDate          string                   `json:"end_date"`
	HolderID         string                   `json:"holder_id"`
	Status           string                   `json:"status"`
	QuotedPriceCents int64                    `json:"quoted_price_cents"`
	AppliedDiscounts []domain.AppliedDiscount `json:"applied_discounts"`
	ExpiresAt        string                   `json:"expires_at"`
	CreatedAt        string                   `json:"created_at"`
}

type BookingResponse struct {
	ID               string                   `json:"id"`
	ResourceID       string                   `json:"resource_id"`
	StartDate        string                   `json:"start_date"`
	EndDate          string                   `json:"end_date"`
	HolderID         string                   `json:"holder_id"`
	FinalPriceCents  int64                    `json:"final_price_cents"`
	AppliedDiscounts []domain.AppliedDiscount `json:"applied_discounts"`
	Status           string                   `json:"status"`
	CreatedAt        string                   `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Name:            r.Name,
		DailyPriceCents: r.DailyPriceCents,
		Currency:        r.Currency,
		MaxAdvanceDays:  r.MaxAdvanceDays,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityDayResponse(d *domain.AvailabilityDay) AvailabilityDayResponse {
	return AvailabilityDayResponse{
		Day:             d.Day.Format(domain.DateLayout),
		Available:       d.Available,
		BasePriceCents:  d.BasePriceCents,
		Season:          string(d.Season),
		PriceMultiplier: d.PriceMultiplier,
		BlockReason:     string(d.BlockReason),
		Notes:           d.Notes,
	}
}

func ToRuleResponse(r *domain.BookingRule) RuleResponse {
	resp := RuleResponse{
		ID:                 r.ID,
		ResourceID:         r.ResourceID,
		Name:               r.Name,
		RuleType:           string(r.RuleType),
		DiscountPercentage: r.DiscountPercentage,
		MinimumDays:        r.MinimumDays,
		MaximumDays:        r.MaximumDays,
		AdvanceBookingDays: r.AdvanceBookingDays,
		Priority:           r.Priority,
		Active:             r.Active,
	}
	if r.ValidFrom != nil {
		s := r.ValidFrom.Format(domain.DateLayout)
		resp.ValidFrom = &s
	}
	if r.ValidTo != nil {
		s := r.ValidTo.Format(domain.DateLayout)
		resp.ValidTo = &s
	}
	return resp
}

func ToHoldResponse(h *domain.ReservationHold) HoldResponse {
	return HoldResponse{
		ID:               h.ID,
		ResourceID:       h.ResourceID,
		StartDate:        h.Range.Start.Format(domain.DateLayout),
		EndDate:          h.Range.End.Format(domain.DateLayout),
		HolderID:         h.HolderID,
		Status:           string(h.Status),
		QuotedPriceCents: h.QuotedPriceCents,
		AppliedDiscounts: h.AppliedDiscounts,
		ExpiresAt:        h.ExpiresAt.Format(time.RFC3339),
		CreatedAt:        h.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ResourceID:       b.ResourceID,
		StartDate:        b.Range.Start.Format(domain.DateLayout),
		EndDate:          b.Range.End.Format(domain.DateLayout),
		HolderID:         b.HolderID,
		FinalPriceCents:  b.FinalPriceCents,
		AppliedDiscounts: b.AppliedDiscounts,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}
