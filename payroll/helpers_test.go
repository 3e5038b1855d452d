package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/paycheck-engine/generic"
	"github.com/warp/paycheck-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(s string) generic.TimePoint { return generic.MustParseDate(s) }

func period(start, end string) generic.Period {
	return generic.Period{Start: date(start), End: date(end)}
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(generic.CurrencyPlaces), msgAndArgs...)
}

func employee(salary string, deps ...payroll.Dependent) payroll.Employee {
	return payroll.Employee{
		ID:          1,
		FirstName:   "Test",
		LastName:    "Employee",
		Salary:      money(salary),
		DateOfBirth: date("1985-04-12"),
		Dependents:  deps,
	}
}

func dependent(id int, rel payroll.Relationship, dob string) payroll.Dependent {
	return payroll.Dependent{
		ID:           payroll.DependentID(id),
		EmployeeID:   1,
		FirstName:    "Dep",
		LastName:     "Employee",
		DateOfBirth:  date(dob),
		Relationship: rel,
	}
}

func child(id int, dob string) payroll.Dependent {
	return dependent(id, payroll.RelationshipChild, dob)
}

func emptyPaycheck(p generic.Period) *payroll.Paycheck {
	return &payroll.Paycheck{EmployeeID: 1, Period: p}
}
