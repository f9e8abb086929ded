package scheduler

import (
	"context"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type HoldSweeper interface {
	ExpireStale(ctx context.Context) ([]*domain.ReservationHold, error)
}

// Scheduler periodically flips stale holds to expired so the active-hold
// index stays small. Readers apply lazy expiry on their own; correctness
// never depends on sweep timing.
type Scheduler struct {
	locks    HoldSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(locks HoldSweeper, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		locks:    locks,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("hold sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("hold sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.locks.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, h := range expired {
		s.logger.Info("hold expired",
			logger.String("hold_id", h.ID),
			logger.String("resource_id", h.ResourceID),
			logger.String("holder_id", h.HolderID),
		)
	}
}
