package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RuleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRuleRepo(db *dbpg.DB) *RuleRepository {
	return &RuleRepository{db: db, strategy: defaultStrategy()}
}

func (r *RuleRepository) Upsert(ctx context.Context, rule *domain.BookingRule) error {
	query := `INSERT INTO booking_rules (id, resource_id, name, rule_type, discount_percentage, minimum_days, maximum_days,
			                             advance_booking_days, valid_from, valid_to, priority, active, created_at, updated_at)
			  VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
			  ON CONFLICT (id) DO UPDATE
			  SET name = EXCLUDED.name,
			      rule_type = EXCLUDED.rule_type,
			      discount_percentage = EXCLUDED.discount_percentage,
			      minimum_days = EXCLUDED.minimum_days,
			      maximum_days = EXCLUDED.maximum_days,
			      advance_booking_days = EXCLUDED.advance_booking_days,
			      valid_from = EXCLUDED.valid_from,
			      valid_to = EXCLUDED.valid_to,
			      priority = EXCLUDED.priority,
			      active = EXCLUDED.active,
			      updated_at = now()`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rule.ID, rule.ResourceID, rule.Name, rule.RuleType, rule.DiscountPercentage,
		rule.MinimumDays, rule.MaximumDays, rule.AdvanceBookingDays,
		rule.ValidFrom, rule.ValidTo, rule.Priority, rule.Active,
	)
	if err != nil {
		return fmt.Errorf("upsert booking rule: %w", err)
	}

	return nil
}

func (r *RuleRepository) ListActive(ctx context.Context, resourceID string) ([]*domain.BookingRule, error) {
	query := `SELECT id, COALESCE(resource_id, ''), name, rule_type, discount_percentage, minimum_days, maximum_days,
			         advance_booking_days, valid_from, valid_to, priority, active, created_at, updated_at
			  FROM booking_rules
			  WHERE active AND (resource_id = $1 OR resource_id IS NULL)
			  ORDER BY priority, discount_percentage DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list active rules: %w", err)
	}
	defer rows.Close()

	return collectRules(rows)
}

func (r *RuleRepository) ListByResource(ctx context.Context, resourceID string) ([]*domain.BookingRule, error) {
	query := `SELECT id, COALESCE(resource_id, ''), name, rule_type, discount_percentage, minimum_days, maximum_days,
			         advance_booking_days, valid_from, valid_to, priority, active, created_at, updated_at
			  FROM booking_rules
			  WHERE resource_id = $1
			  ORDER BY priority, created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list rules by resource: %w", err)
	}
	defer rows.Close()

	return collectRules(rows)
}

func (r *RuleRepository) Delete(ctx context.Context, ruleID string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM booking_rules WHERE id = $1`, ruleID)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rule rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRuleNotFound
	}

	return nil
}

func collectRules(rows *sql.Rows) ([]*domain.BookingRule, error) {
	var res []*domain.BookingRule
	for rows.Next() {
		var rule domain.BookingRule
		if err := rows.Scan(
			&rule.ID, &rule.ResourceID, &rule.Name, &rule.RuleType, &rule.DiscountPercentage,
			&rule.MinimumDays, &rule.MaximumDays, &rule.AdvanceBookingDays,
			&rule.ValidFrom, &rule.ValidTo, &rule.Priority, &rule.Active,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		res = append(res, &rule)
	}

	return res, rows.Err()
}
