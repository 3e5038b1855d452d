package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// CALCULATOR MODEL - Gross pay plus an ordered rule list
// =============================================================================

// CalculatorModel computes a paycheck for an employee (with dependents
// already resolved) and a pay period. It is pure and safe for concurrent use.
type CalculatorModel interface {
	Name() string
	CalculatePaycheck(employee Employee, period generic.Period) Paycheck
}

// Model is the standard CalculatorModel: gross pay prorated by calendar
// year, then every rule applied in the configured order.
type Model struct {
	name  string
	rules []Rule
}

// NewModel returns a model applying rules in the given order.
func NewModel(name string, rules ...Rule) *Model {
	return &Model{name: name, rules: append([]Rule(nil), rules...)}
}

// Name identifies the model in logs.
func (m *Model) Name() string { return m.name }

// Rules returns a copy of the configured rules.
func (m *Model) Rules() []Rule { return append([]Rule(nil), m.rules...) }

// CalculatePaycheck implements CalculatorModel. The period must be valid
// (see generic.Period.Validate); PaycheckService guarantees this.
func (m *Model) CalculatePaycheck(employee Employee, period generic.Period) Paycheck {
	paycheck := Paycheck{
		EmployeeID:   employee.ID,
		Period:       period,
		GrossPay:     GrossPay(employee.Salary, period),
		BenefitsCost: decimal.Zero,
	}

	for _, rule := range m.rules {
		rule.Apply(&paycheck, employee)
	}
	return paycheck
}

// GrossPay prorates an annual salary over period.
//
// Within one year the daily rate is taken first and multiplied out:
// salary / daysInYear * days. Across years each year's share is
// salary * days / daysInYear and the shares are summed. Either way the
// result is rounded to cents once.
func GrossPay(salary decimal.Decimal, period generic.Period) decimal.Decimal {
	if period.WithinOneYear() {
		daily := salary.Div(decimal.NewFromInt(int64(period.DaysInStartYear())))
		return generic.RoundCurrency(daily.Mul(decimal.NewFromInt(int64(period.Days()))))
	}

	total := decimal.Zero
	for _, year := range period.SplitByYear() {
		total = total.Add(generic.Prorate(salary, year.Days(), year.DaysInStartYear()))
	}
	return generic.RoundCurrency(total)
}

// =============================================================================
// DEFAULT BI-WEEKLY MODEL
// =============================================================================

// Defaults for the bi-weekly model.
var (
	DefaultBaseCost                  = decimal.NewFromInt(1000)
	DefaultDependentMonthlySurcharge = decimal.NewFromInt(600)
	DefaultSalaryThreshold           = decimal.NewFromInt(80000)
	DefaultSalaryCostPercentage      = decimal.RequireFromString("0.02")
	DefaultSeniorMonthlySurcharge    = decimal.NewFromInt(200)
)

// DefaultSeniorAge is the dependent age at which the senior surcharge starts.
const DefaultSeniorAge = 50

// BiWeeklyModelName is the name of the default model.
const BiWeeklyModelName = "bi-weekly"

// DefaultBiWeeklyRules returns the default rule list, in order.
func DefaultBiWeeklyRules() []Rule {
	return []Rule{
		BaseCostSurchargeRule{BaseCost: DefaultBaseCost},
		DependentSurchargeRule{
			MonthlySurcharge: DefaultDependentMonthlySurcharge,
			Applicability:    BornInStartMonthPolicy{},
			Proration:        FullProration[Dependent]{},
		},
		SalaryOverThresholdRule{
			CostPercentage: DefaultSalaryCostPercentage,
			Applicability:  SalaryOverThresholdPolicy{Threshold: DefaultSalaryThreshold},
		},
		DependentSurchargeRule{
			MonthlySurcharge: DefaultSeniorMonthlySurcharge,
			Applicability:    OverAgeFromBirthdayPolicy{Age: DefaultSeniorAge},
			Proration:        ProrationByAgePolicy{Age: DefaultSeniorAge},
		},
	}
}

// NewBiWeeklyModel returns the default bi-weekly calculator model.
func NewBiWeeklyModel() *Model {
	return NewModel(BiWeeklyModelName, DefaultBiWeeklyRules()...)
}
