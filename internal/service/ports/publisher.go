package ports

import (
	"context"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

// EventPublisher fans domain events out to external collaborators. Publishing
// must never block or fail a domain operation.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}
