package finance

import "time"

// Period is the half-open interval [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod validates that both bounds are set and End is after Start.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() {
		return Period{}, invalid("start", "is required")
	}

	if end.IsZero() {
		return Period{}, invalid("end", "is required")
	}

	if !end.After(start) {
		return Period{}, invalid("end", "must be after start")
	}

	return Period{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// Previous returns the period of equal length that ends where p starts.
// Calendar months map onto the previous calendar month.
func (p Period) Previous() Period {
	if p.isCalendarMonth() {
		start := p.Start.AddDate(0, -1, 0)

		return Period{Start: start, End: p.Start}
	}

	length := p.End.Sub(p.Start)

	return Period{Start: p.Start.Add(-length), End: p.Start}
}

func (p Period) isCalendarMonth() bool {
	return p.Start.Day() == 1 && p.Start.Hour() == 0 && p.Start.Minute() == 0 &&
		p.Start.Second() == 0 && p.Start.Nanosecond() == 0 &&
		p.End.Equal(p.Start.AddDate(0, 1, 0))
}
