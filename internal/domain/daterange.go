package domain

import "time"

const DateLayout = "2006-01-02"

// DateRange is a half-open interval of calendar days: Start is the first
// booked day, End is the day after the last booked one. All values are UTC
// midnights.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Midnight(start), End: Midnight(end)}
}

// Midnight truncates t to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	day = Midnight(day)
	return !day.Before(r.Start) && day.Before(r.End)
}

// EachDay returns every day covered by the range in order.
func (r DateRange) EachDay() []time.Time {
	if !r.Valid() {
		return nil
	}
	days := make([]time.Time, 0, r.Days())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
