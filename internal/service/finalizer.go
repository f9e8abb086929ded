package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// FinalizerService converts a still-valid hold into a confirmed booking. The
// payment collaborator calls it only after it has confirmed a charge; on
// charge failure it releases the hold instead.
type FinalizerService struct {
	holdRepo    ports.HoldRepo
	bookingRepo ports.BookingRepo
	publisher   ports.EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewFinalizerService(
	holdRepo ports.HoldRepo,
	bookingRepo ports.BookingRepo,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *FinalizerService {
	return &FinalizerService{
		holdRepo:    holdRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *FinalizerService) Finalize(ctx context.Context, holdID string, conf domain.PaymentConfirmation) (*domain.Booking, error) {
	if conf.Reference == "" || (conf.HoldID != "" && conf.HoldID != holdID) {
		return nil, domain.ErrPaymentMismatch
	}

	hold, err := s.holdRepo.GetByID(ctx, holdID)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	now := s.now()
	switch hold.EffectiveStatus(now) {
	case domain.HoldStatusActive:
	case domain.HoldStatusExpired:
		return nil, domain.ErrExpired
	default:
		return nil, domain.ErrConflict
	}

	if conf.AmountCents != hold.QuotedPriceCents {
		return nil, fmt.Errorf("%w: confirmed %d cents, hold quotes %d",
			domain.ErrPaymentMismatch, conf.AmountCents, hold.QuotedPriceCents)
	}

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		ResourceID:       hold.ResourceID,
		Range:            hold.Range,
		HolderID:         hold.HolderID,
		FinalPriceCents:  hold.QuotedPriceCents,
		AppliedDiscounts: hold.AppliedDiscounts,
		PaymentReference: conf.Reference,
		Status:           domain.BookingStatusConfirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = s.finalizeWithRetry(ctx, holdID, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("hold_id", holdID),
		logger.String("resource_id", booking.ResourceID),
		logger.Int64("final_price_cents", booking.FinalPriceCents),
	)

	s.publisher.Publish(ctx, domain.BookingConfirmed{
		BookingID:  booking.ID,
		ResourceID: booking.ResourceID,
		Range:      booking.Range,
		HolderID:   booking.HolderID,
		PriceCents: booking.FinalPriceCents,
		At:         now,
	})

	return booking, nil
}

// finalizeWithRetry retries the transaction once on infrastructural failure.
// A persistent failure surfaces as ErrBookingFailed with the hold left
// active, so the caller can retry before the TTL runs out.
func (s *FinalizerService) finalizeWithRetry(ctx context.Context, holdID string, booking *domain.Booking) error {
	err := s.bookingRepo.Finalize(ctx, holdID, booking)
	if err == nil || isFinalizeRejection(err) {
		return err
	}

	s.logger.Warn("finalize transaction failed, retrying once",
		logger.String("hold_id", holdID),
		logger.String("error", err.Error()),
	)

	err = s.bookingRepo.Finalize(ctx, holdID, booking)
	if err == nil || isFinalizeRejection(err) {
		return err
	}

	return fmt.Errorf("%w: %s", domain.ErrBookingFailed, err.Error())
}

// isFinalizeRejection distinguishes the hold being invalid (no point
// retrying) from infrastructure trouble.
func isFinalizeRejection(err error) bool {
	return errors.Is(err, domain.ErrExpired) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrHoldNotFound)
}

func (s *FinalizerService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}
