package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type availabilityReader interface {
	GetAvailability(ctx context.Context, resourceID string, rng domain.DateRange) ([]*domain.AvailabilityDay, error)
}

type discountEvaluator interface {
	Evaluate(ctx context.Context, resourceID string, rng domain.DateRange, now time.Time) (*domain.DiscountResult, error)
}

// PricingService computes deterministic quotes from calendar facts and rule
// output. It has no state and no side effects; the UI may call it on every
// preview.
type PricingService struct {
	calendar availabilityReader
	rules    discountEvaluator
}

func NewPricingService(calendar availabilityReader, rules discountEvaluator) *PricingService {
	return &PricingService{calendar: calendar, rules: rules}
}

// Quote prices every day of the range as base * dayMultiplier * demand,
// then applies the capped discount total from the rule engine.
func (s *PricingService) Quote(ctx context.Context, resourceID string, rng domain.DateRange, demandMultiplier float64) (*domain.PriceBreakdown, error) {
	if !rng.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}
	if demandMultiplier == 0 {
		demandMultiplier = 1.0
	}
	if demandMultiplier < 0 {
		return nil, fmt.Errorf("%w: demand multiplier must not be negative", domain.ErrValidation)
	}

	days, err := s.calendar.GetAvailability(ctx, resourceID, rng)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	discounts, err := s.rules.Evaluate(ctx, resourceID, rng, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("evaluate rules: %w", err)
	}

	breakdown := &domain.PriceBreakdown{
		ResourceID:       resourceID,
		Range:            rng,
		Days:             make([]domain.DayPrice, 0, len(days)),
		DemandMultiplier: demandMultiplier,
		AppliedDiscounts: discounts.Applied,
	}

	for _, day := range days {
		price := roundCents(float64(day.BasePriceCents) * day.PriceMultiplier * demandMultiplier)
		breakdown.Days = append(breakdown.Days, domain.DayPrice{
			Day:        day.Day.Format(domain.DateLayout),
			BaseCents:  day.BasePriceCents,
			Multiplier: day.PriceMultiplier,
			PriceCents: price,
		})
		breakdown.BasePriceCents += day.BasePriceCents
		breakdown.SeasonAdjustedCents += price
	}

	breakdown.DiscountPercentage = discounts.TotalPercentage
	breakdown.SavingsCents = roundCents(float64(breakdown.SeasonAdjustedCents) * discounts.TotalPercentage / 100)
	breakdown.FinalPriceCents = breakdown.SeasonAdjustedCents - breakdown.SavingsCents

	return breakdown, nil
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
