package ports

import (
	"context"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type BookingRepo interface {
	// Finalize atomically consumes the hold, inserts the booking and blocks
	// every day in its range. The hold must still be active and unexpired
	// inside the transaction; otherwise no booking is created.
	Finalize(ctx context.Context, holdID string, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByResource(ctx context.Context, resourceID string) ([]*domain.Booking, error)
	// CoversDay reports whether a confirmed or completed booking covers the
	// given day.
	CoversDay(ctx context.Context, resourceID string, day time.Time) (bool, error)
}
