package events

import (
	"context"
	"sync"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Handler func(e domain.Event)

// Bus is an in-process publish/subscribe dispatcher for domain events.
// Handlers run on their own goroutine so publishing never blocks a hold or
// finalize path; subscribers must tolerate at-most-once, out-of-order
// delivery.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]Handler
	logger logger.Logger
}

func NewBus(logger logger.Logger) *Bus {
	return &Bus{
		subs:   make(map[string][]Handler),
		logger: logger,
	}
}

// Subscribe registers a handler for the named event. Subscriptions are
// expected at wiring time, before traffic.
func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[eventName] = append(b.subs[eventName], h)
}

func (b *Bus) Publish(ctx context.Context, e domain.Event) {
	b.mu.RLock()
	handlers := b.subs[e.EventName()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	b.logger.Debug("publishing domain event",
		logger.String("event", e.EventName()),
		logger.String("aggregate_id", e.AggregateID()),
	)

	for _, h := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panicked",
						logger.String("event", e.EventName()),
						logger.Any("panic", r),
					)
				}
			}()
			h(e)
		}(h)
	}
}
