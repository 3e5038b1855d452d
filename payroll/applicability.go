package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// APPLICABILITY POLICIES - Does a rule fire for this person and period?
// =============================================================================

// ApplicabilityPolicy decides whether a rule applies to person for period.
// Implementations must be pure: same inputs, same answer.
type ApplicabilityPolicy[T any] interface {
	IsApplicable(person T, period generic.Period) bool
}

// ApplicabilityFunc adapts a function to ApplicabilityPolicy.
type ApplicabilityFunc[T any] func(person T, period generic.Period) bool

func (f ApplicabilityFunc[T]) IsApplicable(person T, period generic.Period) bool {
	return f(person, period)
}

// Always applies to everyone.
func Always[T any]() ApplicabilityPolicy[T] {
	return ApplicabilityFunc[T](func(T, generic.Period) bool { return true })
}

// OverAgeFromBirthdayPolicy applies once the dependent turns Age by the end
// of the period. The birthday itself counts.
type OverAgeFromBirthdayPolicy struct {
	Age int
}

func (p OverAgeFromBirthdayPolicy) IsApplicable(d Dependent, period generic.Period) bool {
	return d.DateOfBirth.AddYears(p.Age).BeforeOrEqual(period.End)
}

// BornInStartMonthPolicy applies to dependents born on or before the last
// day of the month the period starts in. That includes everyone born in
// earlier months and years, not only births within the start month.
type BornInStartMonthPolicy struct{}

func (BornInStartMonthPolicy) IsApplicable(d Dependent, period generic.Period) bool {
	monthEnd := generic.EndOfMonth(period.Start.Year(), period.Start.Month())
	return d.DateOfBirth.BeforeOrEqual(monthEnd)
}

// SalaryOverThresholdPolicy applies when salary is strictly above Threshold.
type SalaryOverThresholdPolicy struct {
	Threshold decimal.Decimal
}

func (p SalaryOverThresholdPolicy) IsApplicable(e Employee, _ generic.Period) bool {
	return e.Salary.GreaterThan(p.Threshold)
}
