package ports

import (
	"context"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type HoldRepo interface {
	// Create inserts the hold if and only if no confirmed booking and no
	// active, unexpired hold overlaps its range. The check and the insert
	// are a single critical section per resource; concurrent overlapping
	// attempts see domain.ErrConflict.
	Create(ctx context.Context, h *domain.ReservationHold) error
	GetByID(ctx context.Context, id string) (*domain.ReservationHold, error)
	// Release transitions an active hold owned by holderID to released.
	// Already-terminal holds are a no-op.
	Release(ctx context.Context, holdID, holderID string) (*domain.ReservationHold, error)
	// ExpireStale flips active holds whose TTL elapsed before now and
	// returns them.
	ExpireStale(ctx context.Context, now time.Time) ([]*domain.ReservationHold, error)
}
