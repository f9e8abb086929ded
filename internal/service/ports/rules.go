package ports

import (
	"context"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type RuleRepo interface {
	Upsert(ctx context.Context, rule *domain.BookingRule) error
	// ListActive returns active rules for the resource plus global rules.
	ListActive(ctx context.Context, resourceID string) ([]*domain.BookingRule, error)
	ListByResource(ctx context.Context, resourceID string) ([]*domain.BookingRule, error)
	Delete(ctx context.Context, ruleID string) error
}
