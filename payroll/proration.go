package payroll

import (
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// PRORATION POLICIES - How many days of the period is an amount owed?
// =============================================================================

// ProrationPolicy returns the number of owed days within period.
// The result is always in [0, period.Days()].
type ProrationPolicy[T any] interface {
	ProrationDays(person T, period generic.Period) int
}

// ProrationFunc adapts a function to ProrationPolicy.
type ProrationFunc[T any] func(person T, period generic.Period) int

func (f ProrationFunc[T]) ProrationDays(person T, period generic.Period) int {
	return f(person, period)
}

// FullProration owes every day of the period.
type FullProration[T any] struct{}

func (FullProration[T]) ProrationDays(_ T, period generic.Period) int {
	return period.Days()
}

// ProrationByAgePolicy owes the days on and after the dependent's Age-th
// birthday.
//
//	birthday after End   -> 0
//	birthday before Start -> every day
//	otherwise             -> birthday..End inclusive
type ProrationByAgePolicy struct {
	Age int
}

func (p ProrationByAgePolicy) ProrationDays(d Dependent, period generic.Period) int {
	applyDate := d.DateOfBirth.AddYears(p.Age)

	switch {
	case applyDate.After(period.End):
		return 0
	case period.Contains(applyDate):
		return generic.DaysBetween(applyDate, period.End) + 1
	default:
		return period.Days()
	}
}
