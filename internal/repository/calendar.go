package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CalendarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCalendarRepo(db *dbpg.DB) *CalendarRepository {
	return &CalendarRepository{db: db, strategy: defaultStrategy()}
}

func (r *CalendarRepository) ListRange(ctx context.Context, resourceID string, rng domain.DateRange) ([]*domain.AvailabilityDay, error) {
	query := `SELECT resource_id, day, available, base_price_cents, season, price_multiplier, block_reason, notes, updated_at
			  FROM availability_days
			  WHERE resource_id = $1 AND day >= $2 AND day < $3
			  ORDER BY day`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("list availability days: %w", err)
	}
	defer rows.Close()

	var res []*domain.AvailabilityDay
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, day)
	}

	return res, rows.Err()
}

func (r *CalendarRepository) Upsert(ctx context.Context, d *domain.AvailabilityDay) error {
	query := `INSERT INTO availability_days (resource_id, day, available, base_price_cents, season, price_multiplier, block_reason, notes, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), now())
			  ON CONFLICT (resource_id, day) DO UPDATE
			  SET available = EXCLUDED.available,
			      base_price_cents = EXCLUDED.base_price_cents,
			      season = EXCLUDED.season,
			      price_multiplier = EXCLUDED.price_multiplier,
			      block_reason = EXCLUDED.block_reason,
			      notes = EXCLUDED.notes,
			      updated_at = now()`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		d.ResourceID, d.Day, d.Available, d.BasePriceCents,
		d.Season, d.PriceMultiplier, string(d.BlockReason), d.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert availability day: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (*domain.AvailabilityDay, error) {
	var d domain.AvailabilityDay
	var blockReason, notes sql.NullString
	if err := row.Scan(
		&d.ResourceID, &d.Day, &d.Available, &d.BasePriceCents,
		&d.Season, &d.PriceMultiplier, &blockReason, &notes, &d.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan availability day: %w", err)
	}
	d.BlockReason = domain.BlockReason(blockReason.String)
	d.Notes = notes.String
	d.Day = domain.Midnight(d.Day)
	return &d, nil
}
