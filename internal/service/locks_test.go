package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubQuoter struct {
	quote *domain.PriceBreakdown
	err   error
}

func (s *stubQuoter) Quote(_ context.Context, _ string, _ domain.DateRange, _ float64) (*domain.PriceBreakdown, error) {
	return s.quote, s.err
}

func fixedQuote() *domain.PriceBreakdown {
	return &domain.PriceBreakdown{
		FinalPriceCents: 81000,
		AppliedDiscounts: []domain.AppliedDiscount{
			{Name: "Multi-day", Percentage: 10},
		},
	}
}

func newLockService(
	t *testing.T,
	holdRepo *mocks.MockHoldRepo,
	resourceRepo *mocks.MockResourceRepo,
	publisher *mocks.MockEventPublisher,
) *LockService {
	t.Helper()
	svc := NewLockService(holdRepo, resourceRepo, &stubQuoter{quote: fixedQuote()}, publisher, DefaultHoldTTL, newTestLogger(t))
	svc.now = func() time.Time { return ruleNow }
	return svc
}

func holdInput() domain.CreateHoldInput {
	return domain.CreateHoldInput{
		ResourceID: "r1",
		Range:      testRange(),
		HolderID:   "u1",
	}
}

func TestLockService_CreateHold_SnapshotsQuote(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, resourceRepo, publisher)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)
	holdRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.HoldCreated")).Return()

	hold, err := svc.CreateHold(context.Background(), holdInput())

	require.NoError(t, err)
	assert.NotEmpty(t, hold.ID)
	assert.Equal(t, domain.HoldStatusActive, hold.Status)
	assert.Equal(t, int64(81000), hold.QuotedPriceCents)
	assert.Len(t, hold.AppliedDiscounts, 1)
	assert.Equal(t, ruleNow.Add(15*time.Minute), hold.ExpiresAt)
}

func TestLockService_CreateHold_Validation(t *testing.T) {
	past := domain.NewDateRange(
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 23, 0, 0, 0, 0, time.UTC),
	)
	inverted := testRange()
	inverted.Start, inverted.End = inverted.End, inverted.Start

	tests := []struct {
		name    string
		mutate  func(*domain.CreateHoldInput)
		wantErr error
	}{
		{"inverted range", func(in *domain.CreateHoldInput) { in.Range = inverted }, domain.ErrInvalidRange},
		{"starts in the past", func(in *domain.CreateHoldInput) { in.Range = past }, domain.ErrInvalidRange},
		{"missing holder", func(in *domain.CreateHoldInput) { in.HolderID = "" }, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newLockService(t,
				mocks.NewMockHoldRepo(t),
				mocks.NewMockResourceRepo(t),
				mocks.NewMockEventPublisher(t),
			)

			in := holdInput()
			tt.mutate(&in)

			_, err := svc.CreateHold(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLockService_CreateHold_BeyondBookableWindow(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, resourceRepo, publisher)

	short := testResource()
	short.MaxAdvanceDays = 7
	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(short, nil)

	_, err := svc.CreateHold(context.Background(), holdInput())

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestLockService_CreateHold_Conflict(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, resourceRepo, publisher)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)
	holdRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.CreateHold(context.Background(), holdInput())

	assert.ErrorIs(t, err, domain.ErrConflict)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLockService_GetHold_LazyExpiry(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)

	svc := newLockService(t, holdRepo, mocks.NewMockResourceRepo(t), mocks.NewMockEventPublisher(t))

	stale := &domain.ReservationHold{
		ID:        "h1",
		Status:    domain.HoldStatusActive,
		ExpiresAt: ruleNow.Add(-time.Minute),
	}
	holdRepo.EXPECT().GetByID(mock.Anything, "h1").Return(stale, nil)

	hold, err := svc.GetHold(context.Background(), "h1")

	require.NoError(t, err)
	assert.Equal(t, domain.HoldStatusExpired, hold.Status)
}

func TestLockService_ReleaseHold_Publishes(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, mocks.NewMockResourceRepo(t), publisher)

	released := &domain.ReservationHold{
		ID:         "h1",
		ResourceID: "r1",
		Range:      testRange(),
		Status:     domain.HoldStatusReleased,
	}
	holdRepo.EXPECT().Release(mock.Anything, "h1", "u1").Return(released, nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.HoldReleased")).Return()

	err := svc.ReleaseHold(context.Background(), "h1", "u1")

	require.NoError(t, err)
}

func TestLockService_ReleaseHold_TerminalIsNoop(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, mocks.NewMockResourceRepo(t), publisher)

	consumed := &domain.ReservationHold{ID: "h1", Status: domain.HoldStatusConsumed}
	holdRepo.EXPECT().Release(mock.Anything, "h1", "u1").Return(consumed, nil)

	err := svc.ReleaseHold(context.Background(), "h1", "u1")

	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLockService_ReleaseHold_WrongOwner(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)

	svc := newLockService(t, holdRepo, mocks.NewMockResourceRepo(t), mocks.NewMockEventPublisher(t))

	holdRepo.EXPECT().Release(mock.Anything, "h1", "intruder").Return(nil, domain.ErrNotHoldOwner)

	err := svc.ReleaseHold(context.Background(), "h1", "intruder")

	assert.ErrorIs(t, err, domain.ErrNotHoldOwner)
}

func TestLockService_ExpireStale_PublishesPerHold(t *testing.T) {
	holdRepo := mocks.NewMockHoldRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := newLockService(t, holdRepo, mocks.NewMockResourceRepo(t), publisher)

	expired := []*domain.ReservationHold{
		{ID: "h1", ResourceID: "r1", Range: testRange()},
		{ID: "h2", ResourceID: "r2", Range: testRange()},
	}
	holdRepo.EXPECT().ExpireStale(mock.Anything, ruleNow).Return(expired, nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.HoldExpired")).Return().Twice()

	got, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// --- concurrency and expiry against an in-memory hold store ---

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// memStore reproduces the repository's serialized calendar+hold state for one
// resource: hold creation and finalization both take the store mutex, the way
// the Postgres repositories both pin the resource row. A hold conflicts with
// any unexpired active hold, any blocking booking, and any owner-blocked day
// on an overlapping range.
type memStore struct {
	mu       sync.Mutex
	now      func() time.Time
	holds    map[string]*domain.ReservationHold
	bookings []*domain.Booking
	blocked  map[time.Time]bool
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{
		now:     now,
		holds:   make(map[string]*domain.ReservationHold),
		blocked: make(map[time.Time]bool),
	}
}

func (s *memStore) BlockDay(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[day] = true
}

func (s *memStore) HoldRepo() *memHoldRepo       { return &memHoldRepo{s: s} }
func (s *memStore) BookingRepo() *memBookingRepo { return &memBookingRepo{s: s} }

type memHoldRepo struct {
	s *memStore
}

func (m *memHoldRepo) Create(_ context.Context, h *domain.ReservationHold) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for day := range s.blocked {
		if h.Range.Contains(day) {
			return domain.ErrConflict
		}
	}
	for _, bk := range s.bookings {
		if bk.ResourceID == h.ResourceID && bk.Range.Overlaps(h.Range) {
			return domain.ErrConflict
		}
	}
	now := s.now()
	for _, ex := range s.holds {
		if ex.ResourceID != h.ResourceID {
			continue
		}
		if ex.Status == domain.HoldStatusActive && !ex.ExpiredAt(now) && ex.Range.Overlaps(h.Range) {
			return domain.ErrConflict
		}
	}

	s.holds[h.ID] = h
	return nil
}

func (m *memHoldRepo) GetByID(_ context.Context, id string) (*domain.ReservationHold, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[id]
	if !ok {
		return nil, domain.ErrHoldNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memHoldRepo) Release(_ context.Context, holdID, holderID string) (*domain.ReservationHold, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[holdID]
	if !ok {
		return nil, domain.ErrHoldNotFound
	}
	if h.HolderID != holderID {
		return nil, domain.ErrNotHoldOwner
	}
	if h.Status == domain.HoldStatusActive {
		h.Status = domain.HoldStatusReleased
	}
	cp := *h
	return &cp, nil
}

func (m *memHoldRepo) ExpireStale(_ context.Context, now time.Time) ([]*domain.ReservationHold, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*domain.ReservationHold
	for _, h := range s.holds {
		if h.Status == domain.HoldStatusActive && h.ExpiredAt(now) {
			h.Status = domain.HoldStatusExpired
			cp := *h
			expired = append(expired, &cp)
		}
	}
	return expired, nil
}

type memBookingRepo struct {
	s *memStore
}

func (m *memBookingRepo) Finalize(_ context.Context, holdID string, b *domain.Booking) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[holdID]
	if !ok {
		return domain.ErrHoldNotFound
	}
	switch {
	case h.Status == domain.HoldStatusExpired:
		return domain.ErrExpired
	case h.Status != domain.HoldStatusActive:
		return domain.ErrConflict
	case h.ExpiredAt(s.now()):
		return domain.ErrExpired
	}
	for _, ex := range s.bookings {
		if ex.ResourceID == b.ResourceID && ex.Range.Overlaps(b.Range) {
			return domain.ErrConflict
		}
	}

	h.Status = domain.HoldStatusConsumed
	s.bookings = append(s.bookings, b)
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (m *memBookingRepo) ListByResource(_ context.Context, resourceID string) ([]*domain.Booking, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.ResourceID == resourceID {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *memBookingRepo) CoversDay(_ context.Context, resourceID string, day time.Time) (bool, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ResourceID == resourceID && b.Range.Contains(day) {
			return true, nil
		}
	}
	return false, nil
}

func TestLockService_ConcurrentOverlappingHolds_ExactlyOneWins(t *testing.T) {
	clock := &fakeClock{t: ruleNow}
	repo := newMemStore(clock.Now).HoldRepo()
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.HoldCreated")).Return()

	svc := NewLockService(repo, resourceRepo, &stubQuoter{quote: fixedQuote()}, publisher, DefaultHoldTTL, newTestLogger(t))
	svc.now = clock.Now

	first := holdInput()
	second := holdInput()
	second.HolderID = "u2"
	second.Range = domain.NewDateRange(
		testRange().Start.AddDate(0, 0, 1),
		testRange().End.AddDate(0, 0, 1),
	)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, in := range []domain.CreateHoldInput{first, second} {
		wg.Add(1)
		go func(i int, in domain.CreateHoldInput) {
			defer wg.Done()
			_, errs[i] = svc.CreateHold(context.Background(), in)
		}(i, in)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok, "exactly one overlapping hold must win")
	assert.Equal(t, 1, conflicts)
}

func TestLockService_ExpiredHoldStopsBlocking(t *testing.T) {
	clock := &fakeClock{t: ruleNow}
	repo := newMemStore(clock.Now).HoldRepo()
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("domain.HoldCreated")).Return()

	svc := NewLockService(repo, resourceRepo, &stubQuoter{quote: fixedQuote()}, publisher, DefaultHoldTTL, newTestLogger(t))
	svc.now = clock.Now

	first, err := svc.CreateHold(context.Background(), holdInput())
	require.NoError(t, err)

	// five minutes in, the hold still blocks the range
	clock.Advance(5 * time.Minute)
	in := holdInput()
	in.HolderID = "u2"
	_, err = svc.CreateHold(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// sixteen minutes in, the TTL has elapsed and the range frees up
	// without any sweep having run
	clock.Advance(11 * time.Minute)
	second, err := svc.CreateHold(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.GetHold(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldStatusExpired, got.Status)
}

func TestLockService_CreateHold_OwnerBlockedDay(t *testing.T) {
	clock := &fakeClock{t: ruleNow}
	store := newMemStore(clock.Now)
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)

	// the owner closed a day in the middle of the requested range
	store.BlockDay(testRange().Start.AddDate(0, 0, 1))

	svc := NewLockService(store.HoldRepo(), resourceRepo, &stubQuoter{quote: fixedQuote()}, publisher, DefaultHoldTTL, newTestLogger(t))
	svc.now = clock.Now

	_, err := svc.CreateHold(context.Background(), holdInput())

	assert.ErrorIs(t, err, domain.ErrConflict)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

// A hold finalized moments before its TTL elapses must keep blocking the
// range afterwards: the booking takes over from the consumed hold, so a
// request arriving just past the TTL still conflicts.
func TestLockService_FinalizeNearExpiryKeepsRangeBlocked(t *testing.T) {
	clock := &fakeClock{t: ruleNow}
	store := newMemStore(clock.Now)
	resourceRepo := mocks.NewMockResourceRepo(t)
	publisher := mocks.NewMockEventPublisher(t)

	resourceRepo.EXPECT().GetByID(mock.Anything, "r1").Return(testResource(), nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	locks := NewLockService(store.HoldRepo(), resourceRepo, &stubQuoter{quote: fixedQuote()}, publisher, DefaultHoldTTL, newTestLogger(t))
	locks.now = clock.Now

	finalizer := NewFinalizerService(store.HoldRepo(), store.BookingRepo(), publisher, newTestLogger(t))
	finalizer.now = clock.Now

	hold, err := locks.CreateHold(context.Background(), holdInput())
	require.NoError(t, err)

	// one second before the TTL elapses, the payment lands
	clock.Advance(DefaultHoldTTL - time.Second)
	booking, err := finalizer.Finalize(context.Background(), hold.ID, domain.PaymentConfirmation{
		Reference:   "pay_123",
		HoldID:      hold.ID,
		AmountCents: hold.QuotedPriceCents,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	// just past the TTL the hold is lazily expired, but the booking it
	// turned into still owns the days
	clock.Advance(2 * time.Second)
	in := holdInput()
	in.HolderID = "u2"
	_, err = locks.CreateHold(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
