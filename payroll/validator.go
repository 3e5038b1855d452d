package payroll

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
)

// =============================================================================
// EMPLOYEE VALIDATION
// =============================================================================

// EmployeeValidator decides whether an employee (with dependents resolved)
// can have a paycheck calculated.
type EmployeeValidator interface {
	IsValid(employee Employee) bool
}

// ValidatorFunc adapts a function to EmployeeValidator.
type ValidatorFunc func(employee Employee) bool

func (f ValidatorFunc) IsValid(employee Employee) bool { return f(employee) }

// ValidationExplainer is implemented by validators that can say why an
// employee was rejected. Validate returns nil for a valid employee.
type ValidationExplainer interface {
	Validate(employee Employee) error
}

// Explain returns why v rejects employee, or nil. Validators that cannot
// explain themselves get a generic message.
func Explain(v EmployeeValidator, employee Employee) error {
	if ex, ok := v.(ValidationExplainer); ok {
		return ex.Validate(employee)
	}
	if !v.IsValid(employee) {
		return fmt.Errorf("rejected by %T", v)
	}
	return nil
}

// SinglePartnerValidator allows at most one spouse or domestic partner.
type SinglePartnerValidator struct{}

func (v SinglePartnerValidator) IsValid(employee Employee) bool {
	return v.Validate(employee) == nil
}

func (SinglePartnerValidator) Validate(employee Employee) error {
	partners := 0
	for _, d := range employee.Dependents {
		if d.Relationship.IsPartner() {
			partners++
		}
	}
	if partners > 1 {
		return fmt.Errorf("%d spouse or domestic partner dependents, at most 1 allowed", partners)
	}
	return nil
}

// FieldValidator checks the struct tags on Employee and Dependent:
// non-negative salary, dates of birth present, known relationships.
type FieldValidator struct {
	validate *validator.Validate
}

// NewFieldValidator returns a FieldValidator aware of decimal and date fields.
func NewFieldValidator() *FieldValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if tp, ok := field.Interface().(generic.TimePoint); ok && !tp.IsZero() {
			return tp.String()
		}
		return ""
	}, generic.TimePoint{})
	return &FieldValidator{validate: v}
}

func (fv *FieldValidator) IsValid(employee Employee) bool {
	return fv.Validate(employee) == nil
}

// Validate returns the validator's field errors, if any.
func (fv *FieldValidator) Validate(employee Employee) error {
	return fv.validate.Struct(employee)
}

// AllOf is valid only when every validator is. Its Validate reports the
// first failing validator's reason.
func AllOf(validators ...EmployeeValidator) EmployeeValidator {
	return allOf(append([]EmployeeValidator(nil), validators...))
}

type allOf []EmployeeValidator

func (a allOf) IsValid(employee Employee) bool {
	for _, v := range a {
		if !v.IsValid(employee) {
			return false
		}
	}
	return true
}

func (a allOf) Validate(employee Employee) error {
	for _, v := range a {
		if err := Explain(v, employee); err != nil {
			return err
		}
	}
	return nil
}

// DefaultValidator combines field checks with the single-partner rule.
func DefaultValidator() EmployeeValidator {
	return AllOf(NewFieldValidator(), SinglePartnerValidator{})
}
