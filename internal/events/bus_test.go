package events

import (
	"context"
	"testing"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus(newTestLogger(t))

	got := make(chan domain.Event, 2)
	bus.Subscribe("hold.created", func(e domain.Event) { got <- e })
	bus.Subscribe("hold.created", func(e domain.Event) { got <- e })

	event := domain.HoldCreated{HoldID: "h1", ResourceID: "r1", At: time.Now()}
	bus.Publish(context.Background(), event)

	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			assert.Equal(t, "hold.created", e.EventName())
			assert.Equal(t, "r1", e.AggregateID())
		case <-time.After(time.Second):
			t.Fatal("handler was not invoked")
		}
	}
}

func TestBus_IgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewBus(newTestLogger(t))

	called := make(chan struct{}, 1)
	bus.Subscribe("booking.confirmed", func(domain.Event) { called <- struct{}{} })

	bus.Publish(context.Background(), domain.HoldReleased{HoldID: "h1"})

	select {
	case <-called:
		t.Fatal("handler for a different event must not fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_RecoversFromHandlerPanic(t *testing.T) {
	bus := NewBus(newTestLogger(t))

	survived := make(chan struct{}, 1)
	bus.Subscribe("hold.expired", func(domain.Event) { panic("boom") })
	bus.Subscribe("hold.expired", func(domain.Event) { survived <- struct{}{} })

	bus.Publish(context.Background(), domain.HoldExpired{HoldID: "h1"})

	select {
	case <-survived:
	case <-time.After(time.Second):
		t.Fatal("panicking handler took down the dispatch")
	}
}
