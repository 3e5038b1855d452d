/*
Package factory provides JSON to Go calculator model conversion.

PURPOSE:
  Converts a JSON rule-set definition into a payroll.Model. The bi-weekly
  model can be reviewed and adjusted as data instead of code; the default
  definition is exactly the built-in payroll.NewBiWeeklyModel.

JSON SCHEMA:
  {
    "name": "bi-weekly",
    "rules": [
      {"type": "base_cost", "amount": "1000"},
      {
        "type": "dependent_surcharge",
        "amount": "600",
        "applicability": {"type": "born_in_start_month"},
        "proration": {"type": "full"}
      },
      {
        "type": "salary_over_threshold",
        "cost_percentage": "0.02",
        "applicability": {"type": "salary_over_threshold", "threshold": "80000"}
      },
      {
        "type": "dependent_surcharge",
        "amount": "200",
        "applicability": {"type": "over_age", "age": 50},
        "proration": {"type": "by_age", "age": 50}
      }
    ]
  }

Amounts are decimal strings (plain JSON numbers are accepted too).
Rules are applied in the order listed.

USAGE:
  f := factory.NewRuleSetFactory()
  model, err := f.ParseModel(jsonBytes)

SEE ALSO:
  - payroll/model.go: Model and the default rule list
  - payroll/rules.go: Rule implementations
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RuleSetJSON is the JSON representation of a calculator model.
type RuleSetJSON struct {
	Name  string     `json:"name"`
	Rules []RuleJSON `json:"rules"`
}

// RuleJSON represents one surcharge rule.
type RuleJSON struct {
	Type           string             `json:"type"` // base_cost, dependent_surcharge, salary_over_threshold
	Amount         *decimal.Decimal   `json:"amount,omitempty"`
	CostPercentage *decimal.Decimal   `json:"cost_percentage,omitempty"`
	Applicability  *ApplicabilityJSON `json:"applicability,omitempty"`
	Proration      *ProrationJSON     `json:"proration,omitempty"`
}

// ApplicabilityJSON selects an applicability policy.
type ApplicabilityJSON struct {
	Type      string           `json:"type"` // always, born_in_start_month, over_age, salary_over_threshold
	Age       int              `json:"age,omitempty"`
	Threshold *decimal.Decimal `json:"threshold,omitempty"`
}

// ProrationJSON selects a proration policy.
type ProrationJSON struct {
	Type string `json:"type"` // full, by_age
	Age  int    `json:"age,omitempty"`
}

// Rule types
const (
	RuleBaseCost            = "base_cost"
	RuleDependentSurcharge  = "dependent_surcharge"
	RuleSalaryOverThreshold = "salary_over_threshold"
)

// Applicability types
const (
	ApplicabilityAlways              = "always"
	ApplicabilityBornInStartMonth    = "born_in_start_month"
	ApplicabilityOverAge             = "over_age"
	ApplicabilitySalaryOverThreshold = "salary_over_threshold"
)

// Proration types
const (
	ProrationFull  = "full"
	ProrationByAge = "by_age"
)

// =============================================================================
// FACTORY
// =============================================================================

// RuleSetFactory converts JSON rule sets into payroll models.
type RuleSetFactory struct{}

func NewRuleSetFactory() *RuleSetFactory {
	return &RuleSetFactory{}
}

// ParseModel parses a JSON rule set into a model.
func (f *RuleSetFactory) ParseModel(data []byte) (*payroll.Model, error) {
	var rs RuleSetJSON
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("invalid rule set JSON: %w", err)
	}
	return f.BuildModel(rs)
}

// BuildModel converts a parsed rule set into a model.
func (f *RuleSetFactory) BuildModel(rs RuleSetJSON) (*payroll.Model, error) {
	if rs.Name == "" {
		return nil, fmt.Errorf("rule set name is required")
	}
	if len(rs.Rules) == 0 {
		return nil, fmt.Errorf("rule set %q has no rules", rs.Name)
	}

	rules := make([]payroll.Rule, 0, len(rs.Rules))
	for i, rj := range rs.Rules {
		rule, err := f.buildRule(rj)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rj.Type, err)
		}
		rules = append(rules, rule)
	}
	return payroll.NewModel(rs.Name, rules...), nil
}

func (f *RuleSetFactory) buildRule(rj RuleJSON) (payroll.Rule, error) {
	switch rj.Type {
	case RuleBaseCost:
		amount, err := requireNonNegative("amount", rj.Amount)
		if err != nil {
			return nil, err
		}
		return payroll.BaseCostSurchargeRule{BaseCost: amount}, nil

	case RuleDependentSurcharge:
		amount, err := requireNonNegative("amount", rj.Amount)
		if err != nil {
			return nil, err
		}
		applicability, err := dependentApplicability(rj.Applicability)
		if err != nil {
			return nil, err
		}
		proration, err := dependentProration(rj.Proration)
		if err != nil {
			return nil, err
		}
		return payroll.DependentSurchargeRule{
			MonthlySurcharge: amount,
			Applicability:    applicability,
			Proration:        proration,
		}, nil

	case RuleSalaryOverThreshold:
		pct, err := requireNonNegative("cost_percentage", rj.CostPercentage)
		if err != nil {
			return nil, err
		}
		applicability, err := employeeApplicability(rj.Applicability)
		if err != nil {
			return nil, err
		}
		return payroll.SalaryOverThresholdRule{
			CostPercentage: pct,
			Applicability:  applicability,
		}, nil

	default:
		return nil, fmt.Errorf("unknown rule type %q", rj.Type)
	}
}

func dependentApplicability(aj *ApplicabilityJSON) (payroll.ApplicabilityPolicy[payroll.Dependent], error) {
	if aj == nil {
		return payroll.Always[payroll.Dependent](), nil
	}
	switch aj.Type {
	case ApplicabilityAlways:
		return payroll.Always[payroll.Dependent](), nil
	case ApplicabilityBornInStartMonth:
		return payroll.BornInStartMonthPolicy{}, nil
	case ApplicabilityOverAge:
		if aj.Age <= 0 {
			return nil, fmt.Errorf("over_age applicability requires a positive age")
		}
		return payroll.OverAgeFromBirthdayPolicy{Age: aj.Age}, nil
	default:
		return nil, fmt.Errorf("applicability %q does not apply to dependents", aj.Type)
	}
}

func employeeApplicability(aj *ApplicabilityJSON) (payroll.ApplicabilityPolicy[payroll.Employee], error) {
	if aj == nil {
		return nil, fmt.Errorf("applicability is required")
	}
	switch aj.Type {
	case ApplicabilityAlways:
		return payroll.Always[payroll.Employee](), nil
	case ApplicabilitySalaryOverThreshold:
		threshold, err := requireNonNegative("threshold", aj.Threshold)
		if err != nil {
			return nil, err
		}
		return payroll.SalaryOverThresholdPolicy{Threshold: threshold}, nil
	default:
		return nil, fmt.Errorf("applicability %q does not apply to employees", aj.Type)
	}
}

func dependentProration(pj *ProrationJSON) (payroll.ProrationPolicy[payroll.Dependent], error) {
	if pj == nil {
		return payroll.FullProration[payroll.Dependent]{}, nil
	}
	switch pj.Type {
	case ProrationFull:
		return payroll.FullProration[payroll.Dependent]{}, nil
	case ProrationByAge:
		if pj.Age <= 0 {
			return nil, fmt.Errorf("by_age proration requires a positive age")
		}
		return payroll.ProrationByAgePolicy{Age: pj.Age}, nil
	default:
		return nil, fmt.Errorf("unknown proration type %q", pj.Type)
	}
}

func requireNonNegative(field string, d *decimal.Decimal) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", field)
	}
	return *d, nil
}

// =============================================================================
// PRESETS
// =============================================================================

// DefaultBiWeeklyJSON returns the rule set equivalent to
// payroll.NewBiWeeklyModel.
func DefaultBiWeeklyJSON() string {
	return `{
  "name": "bi-weekly",
  "rules": [
    {"type": "base_cost", "amount": "1000"},
    {
      "type": "dependent_surcharge",
      "amount": "600",
      "applicability": {"type": "born_in_start_month"},
      "proration": {"type": "full"}
    },
    {
      "type": "salary_over_threshold",
      "cost_percentage": "0.02",
      "applicability": {"type": "salary_over_threshold", "threshold": "80000"}
    },
    {
      "type": "dependent_surcharge",
      "amount": "200",
      "applicability": {"type": "over_age", "age": 50},
      "proration": {"type": "by_age", "age": 50}
    }
  ]
}`
}
