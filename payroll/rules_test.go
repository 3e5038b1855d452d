package payroll_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paycheck-engine/generic"
	"github.com/warp/paycheck-engine/payroll"
)

// =============================================================================
// BASE COST
// =============================================================================

func TestBaseCostSurchargeRule(t *testing.T) {
	tests := []struct {
		name  string
		cost  string
		start string
		end   string
		want  string
	}{
		{"half of June", "1000", "2024-06-01", "2024-06-14", "466.67"},
		{"leap February", "1000", "2024-02-01", "2024-02-14", "482.76"},
		{"June into July", "310", "2024-06-28", "2024-07-04", "71.00"},
		{"leap February into March", "290", "2024-02-27", "2024-03-02", "48.71"},
		{"across the new year", "200", "2023-12-30", "2024-01-02", "25.81"},
		{"single day", "50", "2024-08-15", "2024-08-15", "1.61"},
		{"whole month", "1000", "2024-07-01", "2024-07-31", "1000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := payroll.BaseCostSurchargeRule{BaseCost: money(tt.cost)}
			paycheck := emptyPaycheck(period(tt.start, tt.end))

			rule.Apply(paycheck, employee("50000"))

			assertMoney(t, tt.want, paycheck.BenefitsCost)
		})
	}
}

func TestBaseCostSurchargeRule_LeavesGrossPayAlone(t *testing.T) {
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))
	paycheck.GrossPay = money("2000")

	payroll.BaseCostSurchargeRule{BaseCost: money("1000")}.Apply(paycheck, employee("50000"))

	assertMoney(t, "2000.00", paycheck.GrossPay)
	assert.Equal(t, "[2024-06-01, 2024-06-14]", paycheck.Period.String())
}

// =============================================================================
// DEPENDENT SURCHARGE
// =============================================================================

func TestDependentSurchargeRule_SingleDependent(t *testing.T) {
	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("300"),
		Applicability:    payroll.Always[payroll.Dependent](),
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))

	rule.Apply(paycheck, employee("50000", child(1, "2015-01-01")))

	assertMoney(t, "140.00", paycheck.BenefitsCost)
}

func TestDependentSurchargeRule_EachDependentCharged(t *testing.T) {
	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("100"),
		Applicability:    payroll.Always[payroll.Dependent](),
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-08-01", "2024-08-10"))

	rule.Apply(paycheck, employee("50000", child(1, "2015-01-01"), child(2, "2017-01-01")))

	// 100 * 10/31 = 32.26 each
	assertMoney(t, "64.52", paycheck.BenefitsCost)
}

func TestDependentSurchargeRule_NoDependents(t *testing.T) {
	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("600"),
		Applicability:    payroll.Always[payroll.Dependent](),
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))

	rule.Apply(paycheck, employee("50000"))

	assert.True(t, paycheck.BenefitsCost.IsZero())
}

func TestDependentSurchargeRule_NotApplicable(t *testing.T) {
	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("600"),
		Applicability:    payroll.BornInStartMonthPolicy{},
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))

	rule.Apply(paycheck, employee("50000", child(1, "2024-07-03")))

	assert.True(t, paycheck.BenefitsCost.IsZero())
}

func TestDependentSurchargeRule_ApplicabilityPerMonth(t *testing.T) {
	// GIVEN: A child born July 2, inside a June/July pay period
	// WHEN: The born-in-start-month surcharge is applied
	// THEN: June is not charged, July is charged for its 7 days

	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("600"),
		Applicability:    payroll.BornInStartMonthPolicy{},
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-06-24", "2024-07-07"))

	rule.Apply(paycheck, employee("50000", child(1, "2024-07-02")))

	// 600 * 7/31
	assertMoney(t, "135.48", paycheck.BenefitsCost)
}

func TestDependentSurchargeRule_BornInSecondMonthOfPeriod(t *testing.T) {
	// GIVEN: A child born July 20, period Jun 25 - Jul 8
	// WHEN: The born-in-start-month surcharge is applied
	// THEN: Only the July slice qualifies, so July's 8 days are owed

	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("600"),
		Applicability:    payroll.BornInStartMonthPolicy{},
		Proration:        payroll.FullProration[payroll.Dependent]{},
	}
	paycheck := emptyPaycheck(period("2024-06-25", "2024-07-08"))

	rule.Apply(paycheck, employee("50000", child(1, "2024-07-20")))

	// 600 * 8/31
	assertMoney(t, "154.84", paycheck.BenefitsCost)
}

func TestDependentSurchargeRule_SeniorBirthdayAcrossMonths(t *testing.T) {
	// GIVEN: A partner turning 50 on June 29, period Jun 24 - Jul 7
	// THEN: June owes Jun 29-30, July owes all 7 days

	rule := payroll.DependentSurchargeRule{
		MonthlySurcharge: money("200"),
		Applicability:    payroll.OverAgeFromBirthdayPolicy{Age: 50},
		Proration:        payroll.ProrationByAgePolicy{Age: 50},
	}
	paycheck := emptyPaycheck(period("2024-06-24", "2024-07-07"))

	rule.Apply(paycheck, employee("50000",
		dependent(1, payroll.RelationshipDomesticPartner, "1974-06-29")))

	// 200 * 2/30 + 200 * 7/31
	assertMoney(t, "58.49", paycheck.BenefitsCost)
}

// =============================================================================
// SALARY OVER THRESHOLD
// =============================================================================

func TestSalaryOverThresholdRule(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"non-leap year", "2023-01-01", "2023-01-14", "383.56"},
		{"leap year", "2024-02-01", "2024-02-14", "382.51"},
		{"across the new year", "2023-12-28", "2024-01-05", "246.20"},
		{"single day", "2024-03-15", "2024-03-15", "27.32"},
	}

	rule := payroll.SalaryOverThresholdRule{
		CostPercentage: money("0.1"),
		Applicability:  payroll.Always[payroll.Employee](),
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paycheck := emptyPaycheck(period(tt.start, tt.end))

			rule.Apply(paycheck, employee("100000"))

			assertMoney(t, tt.want, paycheck.BenefitsCost)
		})
	}
}

func TestSalaryOverThresholdRule_BelowThreshold(t *testing.T) {
	rule := payroll.SalaryOverThresholdRule{
		CostPercentage: money("0.02"),
		Applicability:  payroll.SalaryOverThresholdPolicy{Threshold: money("80000")},
	}
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))

	rule.Apply(paycheck, employee("80000"))

	assert.True(t, paycheck.BenefitsCost.IsZero())
}

// =============================================================================
// PAYCHECK
// =============================================================================

func TestPaycheck_AddBenefitsCost_IgnoresNegative(t *testing.T) {
	paycheck := emptyPaycheck(period("2024-06-01", "2024-06-14"))

	paycheck.AddBenefitsCost(money("10.50"))
	paycheck.AddBenefitsCost(money("-5"))
	paycheck.AddBenefitsCost(money("0"))

	assertMoney(t, "10.50", paycheck.BenefitsCost)
}

func TestPaycheck_Response(t *testing.T) {
	paycheck := payroll.Paycheck{
		EmployeeID:   3,
		Period:       period("2024-06-01", "2024-06-14"),
		GrossPay:     money("2884.96"),
		BenefitsCost: money("466.67"),
	}

	resp := paycheck.Response()

	assert.Equal(t, payroll.EmployeeID(3), resp.EmployeeID)
	assertMoney(t, "2418.29", resp.NetPay)
	assert.Equal(t, "2024-06-01", resp.PayPeriodStart.String())
	assert.Equal(t, "2024-06-14", resp.PayPeriodEnd.String())
}

func TestPaycheckResponse_JSONMoneyHasTwoDecimals(t *testing.T) {
	paycheck := payroll.Paycheck{
		EmployeeID:   2,
		Period:       period("2024-06-01", "2024-06-14"),
		GrossPay:     money("3533.1"),
		BenefitsCost: money("1377"),
	}

	out, err := json.Marshal(paycheck.Response())

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"employee_id": 2,
		"gross_pay": "3533.10",
		"benefits_cost": "1377.00",
		"net_pay": "2156.10",
		"pay_period_start": "2024-06-01",
		"pay_period_end": "2024-06-14"
	}`, string(out))
}

func TestRuleFunc(t *testing.T) {
	called := false
	var rule payroll.Rule = payroll.RuleFunc(func(p *payroll.Paycheck, _ payroll.Employee) {
		called = true
		p.AddBenefitsCost(money("1"))
	})
	paycheck := emptyPaycheck(generic.Period{Start: date("2024-06-01"), End: date("2024-06-01")})

	rule.Apply(paycheck, employee("1"))

	assert.True(t, called)
	assertMoney(t, "1.00", paycheck.BenefitsCost)
}
