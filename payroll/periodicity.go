package payroll

import (
	"github.com/warp/paycheck-engine/generic"
)

// Periodicity is how often an employee is paid.
type Periodicity string

const (
	// PeriodicityBiWeekly pays every 14 calendar days.
	PeriodicityBiWeekly Periodicity = "bi-weekly"
)

// BiWeeklyDays is the inclusive length of a bi-weekly pay period.
const BiWeeklyDays = 14

// PeriodFrom returns the pay period beginning on start.
// Only bi-weekly is implemented; anything else is ErrUnsupportedPeriodicity.
// A missing start date is ErrInvalidPeriod.
func (p Periodicity) PeriodFrom(start generic.TimePoint) (generic.Period, error) {
	switch p {
	case PeriodicityBiWeekly:
		return generic.NewPeriod(start, start.AddDays(BiWeeklyDays-1))
	default:
		return generic.Period{}, &generic.UnsupportedPeriodicityError{Periodicity: string(p)}
	}
}
