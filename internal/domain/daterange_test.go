package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Days(t *testing.T) {
	r := NewDateRange(day(2026, 7, 10), day(2026, 7, 13))
	assert.Equal(t, 3, r.Days())
}

func TestDateRange_Valid(t *testing.T) {
	tests := []struct {
		name  string
		rng   DateRange
		valid bool
	}{
		{"normal", NewDateRange(day(2026, 7, 10), day(2026, 7, 13)), true},
		{"single day", NewDateRange(day(2026, 7, 10), day(2026, 7, 11)), true},
		{"empty", NewDateRange(day(2026, 7, 10), day(2026, 7, 10)), false},
		{"inverted", NewDateRange(day(2026, 7, 13), day(2026, 7, 10)), false},
		{"zero", DateRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.rng.Valid())
		})
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	base := NewDateRange(day(2026, 7, 10), day(2026, 7, 13))

	tests := []struct {
		name     string
		other    DateRange
		overlaps bool
	}{
		{"identical", base, true},
		{"partial tail", NewDateRange(day(2026, 7, 11), day(2026, 7, 14)), true},
		{"partial head", NewDateRange(day(2026, 7, 8), day(2026, 7, 11)), true},
		{"contained", NewDateRange(day(2026, 7, 11), day(2026, 7, 12)), true},
		{"touching end is free", NewDateRange(day(2026, 7, 13), day(2026, 7, 15)), false},
		{"touching start is free", NewDateRange(day(2026, 7, 8), day(2026, 7, 10)), false},
		{"disjoint", NewDateRange(day(2026, 7, 20), day(2026, 7, 22)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestDateRange_EachDay(t *testing.T) {
	r := NewDateRange(day(2026, 7, 10), day(2026, 7, 13))
	days := r.EachDay()

	assert.Len(t, days, 3)
	assert.Equal(t, day(2026, 7, 10), days[0])
	assert.Equal(t, day(2026, 7, 12), days[2])
}

func TestHold_EffectiveStatus(t *testing.T) {
	created := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	h := &ReservationHold{
		Status:    HoldStatusActive,
		CreatedAt: created,
		ExpiresAt: created.Add(15 * time.Minute),
	}

	assert.Equal(t, HoldStatusActive, h.EffectiveStatus(created.Add(14*time.Minute)))
	assert.Equal(t, HoldStatusExpired, h.EffectiveStatus(created.Add(15*time.Minute)))
	assert.Equal(t, HoldStatusExpired, h.EffectiveStatus(created.Add(16*time.Minute)))

	h.Status = HoldStatusConsumed
	assert.Equal(t, HoldStatusConsumed, h.EffectiveStatus(created.Add(time.Hour)))
}
