package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports"
	"github.com/google/uuid"
)

type ResourceService struct {
	repo ports.ResourceRepo
}

func NewResourceService(repo ports.ResourceRepo) *ResourceService {
	return &ResourceService{repo: repo}
}

func (s *ResourceService) Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DailyPriceCents <= 0 {
		return nil, fmt.Errorf("%w: daily_price_cents must be positive", domain.ErrValidation)
	}
	if input.MaxAdvanceDays < 0 {
		return nil, fmt.Errorf("%w: max_advance_days must not be negative", domain.ErrValidation)
	}

	currency := input.Currency
	if currency == "" {
		currency = "EUR"
	}

	now := time.Now().UTC()
	resource := &domain.Resource{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		Name:            input.Name,
		DailyPriceCents: input.DailyPriceCents,
		Currency:        currency,
		MaxAdvanceDays:  input.MaxAdvanceDays,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	return resource, nil
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.repo.GetByID(ctx, id)
}
