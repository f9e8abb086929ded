package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{db: db, strategy: defaultStrategy()}
}

// Finalize consumes the hold and creates the booking in one transaction.
// The resource row is pinned with FOR UPDATE first, in the same lock order as
// HoldRepository.Create, so finalizing and creating holds for one resource
// are mutually serialized; then the hold row is pinned and its status and TTL
// re-checked under both locks before anything is written.
func (r *BookingRepository) Finalize(ctx context.Context, holdID string, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var resourceID string
	lockQuery := `SELECT id FROM resources WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ResourceID).Scan(&resourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("lock resource: %w", err)
	}

	var status string
	var expiresAt time.Time
	holdQuery := `SELECT status, expires_at FROM reservation_holds WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, holdQuery, holdID).Scan(&status, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrHoldNotFound
		}
		return fmt.Errorf("lock hold: %w", err)
	}

	switch {
	case domain.HoldStatus(status) == domain.HoldStatusExpired:
		return domain.ErrExpired
	case domain.HoldStatus(status) != domain.HoldStatusActive:
		return domain.ErrConflict
	case !expiresAt.After(time.Now().UTC()):
		return domain.ErrExpired
	}

	consumeQuery := `UPDATE reservation_holds SET status = 'consumed', updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, consumeQuery, holdID); err != nil {
		return fmt.Errorf("consume hold: %w", err)
	}

	discounts, err := json.Marshal(b.AppliedDiscounts)
	if err != nil {
		return fmt.Errorf("marshal discounts: %w", err)
	}

	insertQuery := `INSERT INTO bookings
			(id, resource_id, holder_id, hold_id, start_date, end_date, final_price_cents, applied_discounts, payment_reference, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.ResourceID, b.HolderID, holdID, b.Range.Start, b.Range.End,
		b.FinalPriceCents, discounts, b.PaymentReference, b.Status, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// 23505: the hold was already consumed; 23P01: the range exclusion
		// constraint caught an overlapping confirmed booking.
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	// Block every day of the range, synthesizing rows for days the owner
	// never touched.
	blockQuery := `INSERT INTO availability_days (resource_id, day, available, base_price_cents, season, price_multiplier, block_reason, updated_at)
			SELECT r.id, gs::date, FALSE, r.daily_price_cents, 'medium', 1.0, 'booking', now()
			FROM resources r,
			     generate_series($2::date, $3::date - interval '1 day', interval '1 day') gs
			WHERE r.id = $1
			ON CONFLICT (resource_id, day) DO UPDATE
			SET available = FALSE, block_reason = 'booking', updated_at = now()`
	if _, err = tx.ExecContext(ctx, blockQuery, b.ResourceID, b.Range.Start, b.Range.End); err != nil {
		return fmt.Errorf("block days: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, resource_id, holder_id, start_date, end_date, final_price_cents, applied_discounts, payment_reference, status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) ListByResource(ctx context.Context, resourceID string) ([]*domain.Booking, error) {
	query := `SELECT id, resource_id, holder_id, start_date, end_date, final_price_cents, applied_discounts, payment_reference, status, created_at, updated_at
			  FROM bookings
			  WHERE resource_id = $1
			  ORDER BY start_date`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CoversDay(ctx context.Context, resourceID string, day time.Time) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE resource_id = $1
			  AND status = ANY($3)
			  AND start_date <= $2 AND end_date > $2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, resourceID, domain.Midnight(day), pq.Array(domain.BlockingBookingStatuses))
	if err != nil {
		return false, fmt.Errorf("check booking coverage: %w", err)
	}

	var covered bool
	if err = row.Scan(&covered); err != nil {
		return false, fmt.Errorf("scan booking coverage: %w", err)
	}

	return covered, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var discounts []byte
	if err := row.Scan(
		&b.ID, &b.ResourceID, &b.HolderID, &b.Range.Start, &b.Range.End,
		&b.FinalPriceCents, &discounts, &b.PaymentReference, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	if len(discounts) > 0 {
		if err := json.Unmarshal(discounts, &b.AppliedDiscounts); err != nil {
			return nil, fmt.Errorf("unmarshal discounts: %w", err)
		}
	}
	b.Range.Start = domain.Midnight(b.Range.Start)
	b.Range.End = domain.Midnight(b.Range.End)
	return &b, nil
}
