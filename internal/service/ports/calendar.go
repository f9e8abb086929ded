package ports

import (
	"context"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type CalendarRepo interface {
	// ListRange returns the stored day records inside the range, ordered by
	// day. Days without a record are absent; the service synthesizes them.
	ListRange(ctx context.Context, resourceID string, rng domain.DateRange) ([]*domain.AvailabilityDay, error)
	Upsert(ctx context.Context, day *domain.AvailabilityDay) error
}
