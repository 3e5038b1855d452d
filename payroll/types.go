/*
Package payroll implements the paycheck calculation engine.

PURPOSE:
  Computes an employee's paycheck for a pay period: gross pay prorated from
  the annual salary, minus a benefits cost accumulated by a list of
  composable surcharge rules.

KEY CONCEPTS:
  - ApplicabilityPolicy: does a rule fire for this person in this period?
  - ProrationPolicy: for how many days of the period is the amount owed?
  - Rule: turns policies + an amount into an addition to BenefitsCost
  - Model: gross pay + an ordered rule list = a Paycheck
  - PaycheckService: lookup, validation, periodicity, then the Model

CALCULATION FLOW:
  PaycheckService.CalculatePaycheck
    -> EmployeeLookup + DependentLookup (concurrent)
    -> EmployeeValidator
    -> Model.CalculatePaycheck
         -> gross pay (prorated by calendar year)
         -> for each Rule: Apply(paycheck, employee)

CONCURRENCY:
  Policies, rules and models are configuration-only values. One Model can
  serve any number of concurrent calculations; each call owns its Paycheck.

SEE ALSO:
  - generic/period.go: Month/year splitting used by every rule
  - factory/ruleset.go: Building a Model from JSON
*/
package payroll

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID int
type DependentID int

// =============================================================================
// RELATIONSHIP
// =============================================================================

// Relationship is how a dependent relates to the employee.
type Relationship string

const (
	RelationshipSpouse          Relationship = "spouse"
	RelationshipDomesticPartner Relationship = "domestic_partner"
	RelationshipChild           Relationship = "child"
	RelationshipOther           Relationship = "other"
)

// IsPartner is true for spouse and domestic partner.
func (r Relationship) IsPartner() bool {
	return r == RelationshipSpouse || r == RelationshipDomesticPartner
}

// =============================================================================
// PEOPLE
// =============================================================================

// Employee is the person a paycheck is computed for.
// Salary is annual.
type Employee struct {
	ID          EmployeeID        `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Salary      decimal.Decimal   `json:"salary" validate:"gte=0"`
	DateOfBirth generic.TimePoint `json:"date_of_birth" validate:"required"`
	Dependents  []Dependent       `json:"dependents" validate:"dive"`
}

// WithDependents returns a copy of e carrying the given dependents.
// The receiver's slice is never modified.
func (e Employee) WithDependents(deps []Dependent) Employee {
	e.Dependents = append([]Dependent(nil), deps...)
	return e
}

// Dependent is a person covered by the employee's benefits.
type Dependent struct {
	ID           DependentID       `json:"id"`
	EmployeeID   EmployeeID        `json:"employee_id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	DateOfBirth  generic.TimePoint `json:"date_of_birth" validate:"required"`
	Relationship Relationship      `json:"relationship" validate:"oneof=spouse domestic_partner child other"`
}

// =============================================================================
// PAYCHECK
// =============================================================================

// Paycheck is the result of one calculation. Rules only ever add to
// BenefitsCost; net pay is derived, never stored.
type Paycheck struct {
	EmployeeID   EmployeeID
	Period       generic.Period
	GrossPay     decimal.Decimal
	BenefitsCost decimal.Decimal
}

// NetPay is GrossPay - BenefitsCost.
func (p *Paycheck) NetPay() decimal.Decimal {
	return p.GrossPay.Sub(p.BenefitsCost)
}

// AddBenefitsCost adds a surcharge. Negative amounts are ignored so the
// running cost never decreases.
func (p *Paycheck) AddBenefitsCost(amount decimal.Decimal) {
	if amount.IsNegative() {
		return
	}
	p.BenefitsCost = p.BenefitsCost.Add(amount)
}

// PaycheckResponse is the flattened paycheck handed to transports.
type PaycheckResponse struct {
	EmployeeID     EmployeeID        `json:"employee_id"`
	GrossPay       decimal.Decimal   `json:"gross_pay"`
	BenefitsCost   decimal.Decimal   `json:"benefits_cost"`
	NetPay         decimal.Decimal   `json:"net_pay"`
	PayPeriodStart generic.TimePoint `json:"pay_period_start"`
	PayPeriodEnd   generic.TimePoint `json:"pay_period_end"`
}

// MarshalJSON renders money with exactly two decimals ("3533.10").
func (r PaycheckResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EmployeeID     EmployeeID        `json:"employee_id"`
		GrossPay       string            `json:"gross_pay"`
		BenefitsCost   string            `json:"benefits_cost"`
		NetPay         string            `json:"net_pay"`
		PayPeriodStart generic.TimePoint `json:"pay_period_start"`
		PayPeriodEnd   generic.TimePoint `json:"pay_period_end"`
	}{
		EmployeeID:     r.EmployeeID,
		GrossPay:       r.GrossPay.StringFixed(generic.CurrencyPlaces),
		BenefitsCost:   r.BenefitsCost.StringFixed(generic.CurrencyPlaces),
		NetPay:         r.NetPay.StringFixed(generic.CurrencyPlaces),
		PayPeriodStart: r.PayPeriodStart,
		PayPeriodEnd:   r.PayPeriodEnd,
	})
}

// Response maps the paycheck to its transport shape.
func (p *Paycheck) Response() PaycheckResponse {
	return PaycheckResponse{
		EmployeeID:     p.EmployeeID,
		GrossPay:       p.GrossPay,
		BenefitsCost:   p.BenefitsCost,
		NetPay:         p.NetPay(),
		PayPeriodStart: p.Period.Start,
		PayPeriodEnd:   p.Period.End,
	}
}
