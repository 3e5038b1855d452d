package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/warp/paycheck-engine/generic"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// LOOKUP CONTRACTS - Implemented by store/memory and store/sqlite
// =============================================================================

// EmployeeLookup finds an employee. A missing employee is reported with an
// error wrapping generic.ErrEmployeeNotFound.
type EmployeeLookup interface {
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)
}

// DependentLookup lists an employee's dependents. An employee with none may
// be reported with generic.ErrDependentsNotFound.
type DependentLookup interface {
	GetDependentsForEmployee(ctx context.Context, id EmployeeID) ([]Dependent, error)
}

// =============================================================================
// PAYCHECK SERVICE - Orchestration around the calculator model
// =============================================================================

// PaycheckService resolves an employee and their dependents, validates
// them, and delegates the calculation to a CalculatorModel.
type PaycheckService struct {
	employees  EmployeeLookup
	dependents DependentLookup
	model      CalculatorModel
	validator  EmployeeValidator
	log        zerolog.Logger
}

// NewPaycheckService wires the service. A nil model or validator falls
// back to the bi-weekly model and DefaultValidator.
func NewPaycheckService(
	employees EmployeeLookup,
	dependents DependentLookup,
	model CalculatorModel,
	validator EmployeeValidator,
	log zerolog.Logger,
) *PaycheckService {
	if model == nil {
		model = NewBiWeeklyModel()
	}
	if validator == nil {
		validator = DefaultValidator()
	}
	return &PaycheckService{
		employees:  employees,
		dependents: dependents,
		model:      model,
		validator:  validator,
		log:        log,
	}
}

// CalculatePaycheck computes the paycheck for the pay period of the given
// periodicity starting on start.
//
// Errors:
//   - generic.ErrUnsupportedPeriodicity: periodicity is not bi-weekly
//   - generic.ErrInvalidPeriod: start date missing
//   - generic.ErrEmployeeNotFound: no such employee
//   - generic.ErrInvalidEmployee: employee or dependents failed validation
//   - ctx.Err(): cancelled before the calculation ran
func (s *PaycheckService) CalculatePaycheck(
	ctx context.Context,
	employeeID EmployeeID,
	start generic.TimePoint,
	periodicity Periodicity,
) (Paycheck, error) {
	period, err := periodicity.PeriodFrom(start)
	if err != nil {
		return Paycheck{}, err
	}

	employee, err := s.resolveEmployee(ctx, employeeID)
	if err != nil {
		s.log.Error().Err(err).Int("employee_id", int(employeeID)).Msg("employee lookup failed")
		return Paycheck{}, err
	}

	if !s.validator.IsValid(employee) {
		var reason string
		if err := Explain(s.validator, employee); err != nil {
			reason = err.Error()
		}
		s.log.Warn().Int("employee_id", int(employeeID)).
			Int("dependents", len(employee.Dependents)).
			Str("reason", reason).
			Msg("employee failed validation")
		return Paycheck{}, &generic.ValidationError{EmployeeID: int(employeeID), Reason: reason}
	}

	if err := ctx.Err(); err != nil {
		return Paycheck{}, err
	}

	paycheck := s.model.CalculatePaycheck(employee, period)

	s.log.Debug().
		Int("employee_id", int(employeeID)).
		Str("model", s.model.Name()).
		Stringer("period", period).
		Str("gross_pay", paycheck.GrossPay.StringFixed(generic.CurrencyPlaces)).
		Str("benefits_cost", paycheck.BenefitsCost.StringFixed(generic.CurrencyPlaces)).
		Msg("paycheck calculated")

	return paycheck, nil
}

// resolveEmployee fetches the employee and dependents concurrently and
// returns a copy of the employee carrying its dependents.
func (s *PaycheckService) resolveEmployee(ctx context.Context, id EmployeeID) (Employee, error) {
	var (
		employee   Employee
		dependents []Dependent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := s.employees.GetEmployee(gctx, id)
		if err != nil {
			return err
		}
		employee = e
		return nil
	})
	g.Go(func() error {
		deps, err := s.dependents.GetDependentsForEmployee(gctx, id)
		if errors.Is(err, generic.ErrDependentsNotFound) {
			// valid: the employee simply has no dependents
			return nil
		}
		if err != nil {
			return fmt.Errorf("dependents for employee %d: %w", id, err)
		}
		dependents = deps
		return nil
	})

	if err := g.Wait(); err != nil {
		return Employee{}, err
	}
	return employee.WithDependents(dependents), nil
}
