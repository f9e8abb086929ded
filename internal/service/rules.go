package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// RuleEngine selects the discounts applying to a candidate range.
//
// Stacking policy (a product decision, not derived from requirements): within
// each rule type the rule with the lowest priority value wins, ties broken by
// the highest percentage; the winners' percentages are summed and capped at
// maxTotalPercent.
type RuleEngine struct {
	ruleRepo        ports.RuleRepo
	validate        *validator.Validate
	maxTotalPercent float64
	logger          logger.Logger
}

const DefaultMaxDiscountPercent = 50.0

func NewRuleEngine(ruleRepo ports.RuleRepo, maxTotalPercent float64, logger logger.Logger) *RuleEngine {
	if maxTotalPercent <= 0 || maxTotalPercent > 100 {
		maxTotalPercent = DefaultMaxDiscountPercent
	}
	return &RuleEngine{
		ruleRepo:        ruleRepo,
		validate:        validator.New(),
		maxTotalPercent: maxTotalPercent,
		logger:          logger,
	}
}

// Evaluate returns the applicable discounts for the range. A malformed rule is
// skipped and logged; a broken discount configuration never blocks a quote.
func (s *RuleEngine) Evaluate(ctx context.Context, resourceID string, rng domain.DateRange, now time.Time) (*domain.DiscountResult, error) {
	if !rng.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}

	rules, err := s.ruleRepo.ListActive(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list active rules: %w", err)
	}

	stayDays := rng.Days()
	leadDays := int(rng.Start.Sub(domain.Midnight(now)) / (24 * time.Hour))

	best := make(map[domain.RuleType]*domain.BookingRule)
	for _, rule := range rules {
		if err := s.validate.Struct(rule); err != nil {
			s.logger.Warn("skipping malformed booking rule",
				logger.String("rule_id", rule.ID),
				logger.String("resource_id", resourceID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !ruleMatches(rule, rng, stayDays, leadDays) {
			continue
		}

		current, ok := best[rule.RuleType]
		if !ok || betterRule(rule, current) {
			best[rule.RuleType] = rule
		}
	}

	kept := make([]*domain.BookingRule, 0, len(best))
	for _, rule := range best {
		kept = append(kept, rule)
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Priority != kept[j].Priority {
			return kept[i].Priority < kept[j].Priority
		}
		return kept[i].DiscountPercentage > kept[j].DiscountPercentage
	})

	res := &domain.DiscountResult{Applied: make([]domain.AppliedDiscount, 0, len(kept))}
	var total float64
	for _, rule := range kept {
		res.Applied = append(res.Applied, domain.AppliedDiscount{
			Name:       rule.Name,
			Percentage: rule.DiscountPercentage,
		})
		total += rule.DiscountPercentage
	}
	if total > s.maxTotalPercent {
		total = s.maxTotalPercent
	}
	res.TotalPercentage = total

	return res, nil
}

func ruleMatches(rule *domain.BookingRule, rng domain.DateRange, stayDays, leadDays int) bool {
	if rule.ValidFrom != nil && rng.Start.Before(domain.Midnight(*rule.ValidFrom)) {
		return false
	}
	if rule.ValidTo != nil && rng.Start.After(domain.Midnight(*rule.ValidTo)) {
		return false
	}
	if rule.MinimumDays != nil && stayDays < *rule.MinimumDays {
		return false
	}
	if rule.MaximumDays != nil && stayDays > *rule.MaximumDays {
		return false
	}

	switch rule.RuleType {
	case domain.RuleEarlyBird:
		if rule.AdvanceBookingDays != nil && leadDays < *rule.AdvanceBookingDays {
			return false
		}
	case domain.RuleLastMinute:
		if rule.AdvanceBookingDays != nil && leadDays > *rule.AdvanceBookingDays {
			return false
		}
	}

	return true
}

// betterRule reports whether a should replace b within the same rule type:
// lower priority wins, ties go to the bigger discount.
func betterRule(a, b *domain.BookingRule) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.DiscountPercentage > b.DiscountPercentage
}

// UpsertRule validates and stores an owner-configured rule.
func (s *RuleEngine) UpsertRule(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if err := s.validate.Struct(rule); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if rule.MinimumDays != nil && rule.MaximumDays != nil && *rule.MinimumDays > *rule.MaximumDays {
		return nil, fmt.Errorf("%w: minimum_days exceeds maximum_days", domain.ErrValidation)
	}
	if rule.ValidFrom != nil && rule.ValidTo != nil && rule.ValidFrom.After(*rule.ValidTo) {
		return nil, fmt.Errorf("%w: valid_from is after valid_to", domain.ErrValidation)
	}

	if err := s.ruleRepo.Upsert(ctx, rule); err != nil {
		return nil, fmt.Errorf("upsert rule: %w", err)
	}

	s.logger.Info("booking rule saved",
		logger.String("rule_id", rule.ID),
		logger.String("resource_id", rule.ResourceID),
		logger.String("rule_type", string(rule.RuleType)),
	)

	return rule, nil
}

func (s *RuleEngine) ListRules(ctx context.Context, resourceID string) ([]*domain.BookingRule, error) {
	return s.ruleRepo.ListByResource(ctx, resourceID)
}

func (s *RuleEngine) DeleteRule(ctx context.Context, ruleID string) error {
	return s.ruleRepo.Delete(ctx, ruleID)
}
