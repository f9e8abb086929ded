package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CalendarService owns the per-day availability records. It never inspects
// holds; day blocking driven by bookings is applied by the finalizer and only
// guarded against here.
type CalendarService struct {
	calendarRepo ports.CalendarRepo
	resourceRepo ports.ResourceRepo
	bookingRepo  ports.BookingRepo
	logger       logger.Logger
}

func NewCalendarService(
	calendarRepo ports.CalendarRepo,
	resourceRepo ports.ResourceRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *CalendarService {
	return &CalendarService{
		calendarRepo: calendarRepo,
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetAvailability returns one record per day in the range, synthesizing the
// resource defaults for days without a stored row.
func (s *CalendarService) GetAvailability(ctx context.Context, resourceID string, rng domain.DateRange) ([]*domain.AvailabilityDay, error) {
	if !rng.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	stored, err := s.calendarRepo.ListRange(ctx, resourceID, rng)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	byDay := make(map[time.Time]*domain.AvailabilityDay, len(stored))
	for _, d := range stored {
		byDay[d.Day] = d
	}

	res := make([]*domain.AvailabilityDay, 0, rng.Days())
	for _, day := range rng.EachDay() {
		if d, ok := byDay[day]; ok {
			res = append(res, d)
			continue
		}
		res = append(res, domain.DefaultDay(resource, day))
	}

	return res, nil
}

// SetAvailability applies owner edits to a single day. Availability on a day
// covered by a confirmed booking cannot be touched in either direction: the
// blocked state is derived from the booking, not from the stored flag. Price
// and season edits are always allowed.
func (s *CalendarService) SetAvailability(ctx context.Context, resourceID string, day time.Time, input domain.UpdateAvailabilityInput) (*domain.AvailabilityDay, error) {
	day = domain.Midnight(day)

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	if input.Available != nil {
		covered, err := s.bookingRepo.CoversDay(ctx, resourceID, day)
		if err != nil {
			return nil, fmt.Errorf("check booking coverage: %w", err)
		}
		if covered {
			return nil, domain.ErrBlocked
		}
	}
	if input.BasePriceCents != nil && *input.BasePriceCents < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", domain.ErrValidation)
	}
	if input.PriceMultiplier != nil && *input.PriceMultiplier < 0 {
		return nil, fmt.Errorf("%w: price multiplier must not be negative", domain.ErrValidation)
	}

	current, err := s.loadDay(ctx, resource, day)
	if err != nil {
		return nil, err
	}

	if input.Available != nil {
		current.Available = *input.Available
		if current.Available {
			current.BlockReason = ""
		} else if current.BlockReason == "" {
			current.BlockReason = domain.BlockReasonOwner
		}
	}
	if input.BasePriceCents != nil {
		current.BasePriceCents = *input.BasePriceCents
	}
	if input.Season != nil {
		current.Season = *input.Season
	}
	if input.PriceMultiplier != nil {
		current.PriceMultiplier = *input.PriceMultiplier
	}
	if input.BlockReason != nil && !current.Available {
		current.BlockReason = *input.BlockReason
	}
	if input.Notes != nil {
		current.Notes = *input.Notes
	}

	if err = s.calendarRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("upsert day: %w", err)
	}

	s.logger.Info("availability updated",
		logger.String("resource_id", resourceID),
		logger.String("day", day.Format(domain.DateLayout)),
	)

	return current, nil
}

func (s *CalendarService) loadDay(ctx context.Context, resource *domain.Resource, day time.Time) (*domain.AvailabilityDay, error) {
	rng := domain.DateRange{Start: day, End: day.AddDate(0, 0, 1)}
	stored, err := s.calendarRepo.ListRange(ctx, resource.ID, rng)
	if err != nil {
		return nil, fmt.Errorf("load day: %w", err)
	}
	if len(stored) > 0 {
		return stored[0], nil
	}
	return domain.DefaultDay(resource, day), nil
}
