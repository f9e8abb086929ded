package ports

import (
	"context"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
)

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}
