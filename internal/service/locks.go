package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const DefaultHoldTTL = 15 * time.Minute

type quoter interface {
	Quote(ctx context.Context, resourceID string, rng domain.DateRange, demandMultiplier float64) (*domain.PriceBreakdown, error)
}

// LockService creates, releases and expires reservation holds. It is the only
// component allowed to transition hold status. The hold/booking overlap check
// itself lives in the repository transaction; this service validates the
// request, snapshots the quote onto the hold and emits events.
type LockService struct {
	holdRepo     ports.HoldRepo
	resourceRepo ports.ResourceRepo
	pricer       quoter
	publisher    ports.EventPublisher
	ttl          time.Duration
	logger       logger.Logger
	now          func() time.Time
}

func NewLockService(
	holdRepo ports.HoldRepo,
	resourceRepo ports.ResourceRepo,
	pricer quoter,
	publisher ports.EventPublisher,
	ttl time.Duration,
	logger logger.Logger,
) *LockService {
	if ttl <= 0 {
		ttl = DefaultHoldTTL
	}
	return &LockService{
		holdRepo:     holdRepo,
		resourceRepo: resourceRepo,
		pricer:       pricer,
		publisher:    publisher,
		ttl:          ttl,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *LockService) CreateHold(ctx context.Context, in domain.CreateHoldInput) (*domain.ReservationHold, error) {
	now := s.now()
	if !in.Range.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}
	if in.Range.Start.Before(domain.Midnight(now)) {
		return nil, fmt.Errorf("%w: range starts in the past", domain.ErrInvalidRange)
	}
	if in.HolderID == "" {
		return nil, fmt.Errorf("%w: holder_id is required", domain.ErrValidation)
	}

	resource, err := s.resourceRepo.GetByID(ctx, in.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	if resource.MaxAdvanceDays > 0 {
		horizon := domain.Midnight(now).AddDate(0, 0, resource.MaxAdvanceDays)
		if in.Range.End.After(horizon) {
			return nil, fmt.Errorf("%w: range exceeds the bookable window of %d days", domain.ErrInvalidRange, resource.MaxAdvanceDays)
		}
	}

	quote, err := s.pricer.Quote(ctx, in.ResourceID, in.Range, in.DemandMultiplier)
	if err != nil {
		return nil, fmt.Errorf("quote hold price: %w", err)
	}

	hold := &domain.ReservationHold{
		ID:               uuid.New().String(),
		ResourceID:       in.ResourceID,
		Range:            in.Range,
		HolderID:         in.HolderID,
		Status:           domain.HoldStatusActive,
		QuotedPriceCents: quote.FinalPriceCents,
		AppliedDiscounts: quote.AppliedDiscounts,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.ttl),
	}

	if err = s.holdRepo.Create(ctx, hold); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.logger.Info("hold created",
		logger.String("hold_id", hold.ID),
		logger.String("resource_id", hold.ResourceID),
		logger.String("holder_id", hold.HolderID),
		logger.Int64("quoted_price_cents", hold.QuotedPriceCents),
	)

	s.publisher.Publish(ctx, domain.HoldCreated{
		HoldID:     hold.ID,
		ResourceID: hold.ResourceID,
		Range:      hold.Range,
		HolderID:   hold.HolderID,
		ExpiresAt:  hold.ExpiresAt,
		At:         now,
	})

	return hold, nil
}

// GetHold returns the hold as a reader must see it at call time: an active
// hold past its TTL reads as expired even before the sweep has run.
func (s *LockService) GetHold(ctx context.Context, holdID string) (*domain.ReservationHold, error) {
	hold, err := s.holdRepo.GetByID(ctx, holdID)
	if err != nil {
		return nil, err
	}
	hold.Status = hold.EffectiveStatus(s.now())
	return hold, nil
}

// ReleaseHold transitions an active hold to released. Holds already in a
// terminal state are left untouched; releasing twice is a no-op.
func (s *LockService) ReleaseHold(ctx context.Context, holdID, holderID string) error {
	hold, err := s.holdRepo.Release(ctx, holdID, holderID)
	if err != nil {
		return fmt.Errorf("release hold: %w", err)
	}

	if hold.Status != domain.HoldStatusReleased {
		return nil
	}

	s.logger.Info("hold released",
		logger.String("hold_id", holdID),
		logger.String("resource_id", hold.ResourceID),
	)

	s.publisher.Publish(ctx, domain.HoldReleased{
		HoldID:     hold.ID,
		ResourceID: hold.ResourceID,
		Range:      hold.Range,
		At:         s.now(),
	})

	return nil
}

// ExpireStale flips holds whose TTL elapsed. Correctness never depends on
// this running: every read applies lazy expiry. The sweep only keeps the
// active-hold index small.
func (s *LockService) ExpireStale(ctx context.Context) ([]*domain.ReservationHold, error) {
	now := s.now()
	expired, err := s.holdRepo.ExpireStale(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire stale holds: %w", err)
	}

	for _, hold := range expired {
		s.publisher.Publish(ctx, domain.HoldExpired{
			HoldID:     hold.ID,
			ResourceID: hold.ResourceID,
			Range:      hold.Range,
			At:         now,
		})
	}

	return expired, nil
}
