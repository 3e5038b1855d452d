package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// RULES - Composable benefit surcharges
// =============================================================================

// Rule adds its surcharge for employee to paycheck.BenefitsCost.
// A rule never touches gross pay or the period, and holds no per-call state.
type Rule interface {
	Apply(paycheck *Paycheck, employee Employee)
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(paycheck *Paycheck, employee Employee)

func (f RuleFunc) Apply(paycheck *Paycheck, employee Employee) { f(paycheck, employee) }

// =============================================================================
// BASE COST
// =============================================================================

// BaseCostSurchargeRule charges a flat monthly BaseCost to every employee,
// prorated by the days of each calendar month the period covers.
//
//	Jun 1-14:       1000 * 14/30                 = 466.67
//	Jun 28 - Jul 4: 310 * 3/30 + 310 * 4/31      = 71.00
type BaseCostSurchargeRule struct {
	BaseCost decimal.Decimal
}

func (r BaseCostSurchargeRule) Apply(paycheck *Paycheck, _ Employee) {
	total := decimal.Zero
	for _, month := range paycheck.Period.SplitByMonth() {
		total = total.Add(generic.Prorate(r.BaseCost, month.Days(), month.DaysInStartMonth()))
	}
	paycheck.AddBenefitsCost(generic.RoundCurrency(total))
}

// =============================================================================
// DEPENDENT SURCHARGE
// =============================================================================

// DependentSurchargeRule charges MonthlySurcharge per dependent.
//
// Each month-local slice of the period is evaluated on its own: the
// dependent must pass Applicability for that slice, and Proration decides
// how many of its days are owed against that month's length. A dependent's
// slices are summed and rounded once.
type DependentSurchargeRule struct {
	MonthlySurcharge decimal.Decimal
	Applicability    ApplicabilityPolicy[Dependent]
	Proration        ProrationPolicy[Dependent]
}

func (r DependentSurchargeRule) Apply(paycheck *Paycheck, employee Employee) {
	months := paycheck.Period.SplitByMonth()
	for _, dependent := range employee.Dependents {
		paycheck.AddBenefitsCost(r.surcharge(dependent, months))
	}
}

func (r DependentSurchargeRule) surcharge(dependent Dependent, months []generic.Period) decimal.Decimal {
	total := decimal.Zero
	for _, month := range months {
		if !r.Applicability.IsApplicable(dependent, month) {
			continue
		}
		days := r.Proration.ProrationDays(dependent, month)
		total = total.Add(generic.Prorate(r.MonthlySurcharge, days, month.DaysInStartMonth()))
	}
	return generic.RoundCurrency(total)
}

// =============================================================================
// SALARY OVER THRESHOLD
// =============================================================================

// SalaryOverThresholdRule charges CostPercentage of the annual salary to
// employees passing Applicability, prorated by calendar year (365 or 366).
//
//	100000 * 0.1, Dec 28 2023 - Jan 5 2024:
//	  10000 * 4/365 + 10000 * 5/366 = 246.20
type SalaryOverThresholdRule struct {
	CostPercentage decimal.Decimal
	Applicability  ApplicabilityPolicy[Employee]
}

func (r SalaryOverThresholdRule) Apply(paycheck *Paycheck, employee Employee) {
	if !r.Applicability.IsApplicable(employee, paycheck.Period) {
		return
	}

	annualCost := employee.Salary.Mul(r.CostPercentage)

	total := decimal.Zero
	for _, year := range paycheck.Period.SplitByYear() {
		total = total.Add(generic.Prorate(annualCost, year.Days(), year.DaysInStartYear()))
	}
	paycheck.AddBenefitsCost(generic.RoundCurrency(total))
}
