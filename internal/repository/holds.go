package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HoldRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHoldRepo(db *dbpg.DB) *HoldRepository {
	return &HoldRepository{db: db, strategy: defaultStrategy()}
}

// Create performs the overlap checks and the insert inside one transaction
// that pins the resource row with FOR UPDATE. Two concurrent calls for the
// same resource serialize on that row lock, so at most one of two overlapping
// requests can pass the checks. A range touching an owner-blocked day is
// rejected the same way as one covered by a booking or a live hold.
func (r *HoldRepository) Create(ctx context.Context, h *domain.ReservationHold) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var resourceID string
	lockQuery := `SELECT id FROM resources WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, h.ResourceID).Scan(&resourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrResourceNotFound
		}
		return fmt.Errorf("lock resource: %w", err)
	}

	var blocked bool
	blockedQuery := `SELECT EXISTS (
			SELECT 1 FROM availability_days
			WHERE resource_id = $1
			  AND available = FALSE
			  AND day >= $2 AND day < $3)`
	if err = tx.QueryRowContext(ctx, blockedQuery, h.ResourceID, h.Range.Start, h.Range.End).Scan(&blocked); err != nil {
		return fmt.Errorf("check blocked days: %w", err)
	}
	if blocked {
		return domain.ErrConflict
	}

	var booked bool
	bookedQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE resource_id = $1
			  AND status IN ('confirmed', 'completed')
			  AND start_date < $3 AND end_date > $2)`
	if err = tx.QueryRowContext(ctx, bookedQuery, h.ResourceID, h.Range.Start, h.Range.End).Scan(&booked); err != nil {
		return fmt.Errorf("check bookings: %w", err)
	}
	if booked {
		return domain.ErrConflict
	}

	var held bool
	heldQuery := `SELECT EXISTS (
			SELECT 1 FROM reservation_holds
			WHERE resource_id = $1
			  AND status = 'active'
			  AND expires_at > now()
			  AND start_date < $3 AND end_date > $2)`
	if err = tx.QueryRowContext(ctx, heldQuery, h.ResourceID, h.Range.Start, h.Range.End).Scan(&held); err != nil {
		return fmt.Errorf("check holds: %w", err)
	}
	if held {
		return domain.ErrConflict
	}

	discounts, err := json.Marshal(h.AppliedDiscounts)
	if err != nil {
		return fmt.Errorf("marshal discounts: %w", err)
	}

	insertQuery := `INSERT INTO reservation_holds
			(id, resource_id, holder_id, start_date, end_date, status, quoted_price_cents, applied_discounts, created_at, expires_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		h.ID, h.ResourceID, h.HolderID, h.Range.Start, h.Range.End,
		h.Status, h.QuotedPriceCents, discounts, h.CreatedAt, h.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert hold: %w", err)
	}

	return tx.Commit()
}

func (r *HoldRepository) GetByID(ctx context.Context, id string) (*domain.ReservationHold, error) {
	query := `SELECT id, resource_id, holder_id, start_date, end_date, status, quoted_price_cents, applied_discounts, created_at, expires_at, updated_at
			  FROM reservation_holds
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hold: %w", err)
	}

	h, err := scanHold(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHoldNotFound
		}
		return nil, err
	}

	return h, nil
}

func (r *HoldRepository) Release(ctx context.Context, holdID, holderID string) (*domain.ReservationHold, error) {
	query := `UPDATE reservation_holds
			  SET status = 'released', updated_at = now()
			  WHERE id = $1 AND holder_id = $2 AND status = 'active'
			  RETURNING id, resource_id, holder_id, start_date, end_date, status, quoted_price_cents, applied_discounts, created_at, expires_at, updated_at`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, holdID, holderID)
	if err != nil {
		return nil, fmt.Errorf("release hold: %w", err)
	}

	h, err := scanHold(row)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Nothing updated: distinguish missing hold, foreign hold, and the
	// idempotent already-terminal case.
	existing, err := r.GetByID(ctx, holdID)
	if err != nil {
		return nil, err
	}
	if existing.HolderID != holderID {
		return nil, domain.ErrNotHoldOwner
	}
	return existing, nil
}

func (r *HoldRepository) ExpireStale(ctx context.Context, now time.Time) ([]*domain.ReservationHold, error) {
	query := `UPDATE reservation_holds
			  SET status = 'expired', updated_at = now()
			  WHERE status = 'active' AND expires_at <= $1
			  RETURNING id, resource_id, holder_id, start_date, end_date, status, quoted_price_cents, applied_discounts, created_at, expires_at, updated_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("expire stale holds: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReservationHold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

func scanHold(row rowScanner) (*domain.ReservationHold, error) {
	var h domain.ReservationHold
	var discounts []byte
	if err := row.Scan(
		&h.ID, &h.ResourceID, &h.HolderID, &h.Range.Start, &h.Range.End,
		&h.Status, &h.QuotedPriceCents, &discounts, &h.CreatedAt, &h.ExpiresAt, &h.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan hold: %w", err)
	}
	if len(discounts) > 0 {
		if err := json.Unmarshal(discounts, &h.AppliedDiscounts); err != nil {
			return nil, fmt.Errorf("unmarshal discounts: %w", err)
		}
	}
	h.Range.Start = domain.Midnight(h.Range.Start)
	h.Range.End = domain.Midnight(h.Range.End)
	return &h, nil
}
