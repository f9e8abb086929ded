package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type ResourceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewResourceRepo(db *dbpg.DB) *ResourceRepository {
	return &ResourceRepository{db: db, strategy: defaultStrategy()}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, owner_id, name, daily_price_cents, currency, max_advance_days, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.OwnerID, res.Name, res.DailyPriceCents,
		res.Currency, res.MaxAdvanceDays, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}

	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT id, owner_id, name, daily_price_cents, currency, max_advance_days, created_at, updated_at
			  FROM resources
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}

	var res domain.Resource
	if err = row.Scan(
		&res.ID, &res.OwnerID, &res.Name, &res.DailyPriceCents,
		&res.Currency, &res.MaxAdvanceDays, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("scan resource: %w", err)
	}

	return &res, nil
}
