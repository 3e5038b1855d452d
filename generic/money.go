/*
Package generic provides the calendar and currency primitives the paycheck
engine is built on.

PURPOSE:
  Everything in here is payroll-agnostic: dates, inclusive periods that can
  be split at month/year boundaries, exact decimal money, and the error
  taxonomy shared by the engine and its collaborators.

DESIGN PRINCIPLES:
  1. Precision: Money is decimal.Decimal, never float64
  2. Whole days: TimePoint is a calendar date, periods are inclusive
  3. Round late: intermediate shares keep full precision; only the amount a
     rule finally posts is rounded to cents

SEE ALSO:
  - period.go: Period splitting
  - errors.go: Sentinel and structured errors
  - payroll/rules.go: Where rounding is applied
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places money is rounded to.
const CurrencyPlaces = 2

// RoundCurrency rounds to cents, half away from zero.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// MustParseDecimal parses s or panics. Intended for constants and tests.
func MustParseDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Prorate returns amount * days / unitDays at full precision.
// Multiplication happens first so whole-unit results stay exact.
func Prorate(amount decimal.Decimal, days, unitDays int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(int64(unitDays)))
}
