package generic

import (
	"fmt"
)

// =============================================================================
// PERIOD - The core concept for paycheck calculation
// =============================================================================

// Period is an inclusive calendar date range [Start, End].
// A paycheck is ALWAYS computed for a period, never for a point in time.
//
// Monthly and yearly amounts are prorated against the calendar unit each
// day belongs to, so the engine splits a period into month-local or
// year-local sub-periods before prorating:
//
//	[Jun 28, Jul 4] by month -> [Jun 28, Jun 30], [Jul 1, Jul 4]
//	[Dec 28, Jan 4] by year  -> [Dec 28, Dec 31], [Jan 1, Jan 4]
type Period struct {
	Start TimePoint
	End   TimePoint
}

// NewPeriod returns [start, end], or ErrInvalidPeriod when either date is
// missing or end is before start.
func NewPeriod(start, end TimePoint) (Period, error) {
	p := Period{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate checks the period is well-formed.
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: missing start or end date", ErrInvalidPeriod)
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, p)
	}
	return nil
}

// Contains returns true if the time point is within the period [Start, End]
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// Days returns the inclusive day count. A single-day period has 1 day.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

// WithinOneMonth reports whether Start and End share a calendar month.
func (p Period) WithinOneMonth() bool {
	return p.Start.SameMonth(p.End)
}

// WithinOneYear reports whether Start and End share a calendar year.
func (p Period) WithinOneYear() bool {
	return p.Start.Year() == p.End.Year()
}

// DaysInStartMonth is the length of the calendar month containing Start.
func (p Period) DaysInStartMonth() int {
	return DaysInMonth(p.Start.Year(), p.Start.Month())
}

// DaysInStartYear is the length of the calendar year containing Start.
func (p Period) DaysInStartYear() int {
	return DaysInYear(p.Start.Year())
}

// SplitByMonth returns the month-local sub-periods covering p, in order.
// A period inside one month comes back unchanged as a single element.
func (p Period) SplitByMonth() []Period {
	var parts []Period
	start := p.Start
	for start.BeforeOrEqual(p.End) {
		end := EndOfMonth(start.Year(), start.Month())
		if end.After(p.End) {
			end = p.End
		}
		parts = append(parts, Period{Start: start, End: end})
		start = end.AddDays(1)
	}
	return parts
}

// SplitByYear returns the year-local sub-periods covering p, in order.
func (p Period) SplitByYear() []Period {
	var parts []Period
	start := p.Start
	for start.BeforeOrEqual(p.End) {
		end := EndOfYear(start.Year())
		if end.After(p.End) {
			end = p.End
		}
		parts = append(parts, Period{Start: start, End: end})
		start = end.AddDays(1)
	}
	return parts
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
