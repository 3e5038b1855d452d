/*
errors.go - Centralized error types for the paycheck engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Collaborators (stores, validators, the orchestration service) wrap these
  errors with additional context; callers classify with errors.Is/As.

ERROR CATEGORIES:
  1. Not found - employee (fatal) or dependents (treated as "none")
  2. Invalid argument - employee data failed validation, malformed period
  3. Unsupported - periodicity the engine does not implement

The calculation itself has no error path: day counts are always >= 28 per
month and >= 365 per year, so no division can fail.
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when the employee lookup has no match.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDependentsNotFound is returned when an employee has no dependents
	// on record. The orchestration service treats it as an empty list.
	ErrDependentsNotFound = errors.New("dependents not found")

	// ErrInvalidEmployee is returned when employee data fails validation.
	ErrInvalidEmployee = errors.New("invalid employee data")

	// ErrUnsupportedPeriodicity is returned for pay periodicities that have
	// no calculator model.
	ErrUnsupportedPeriodicity = errors.New("unsupported periodicity")

	// ErrInvalidPeriod is returned when a period is malformed: a missing
	// date, or end before start.
	ErrInvalidPeriod = errors.New("invalid period")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// EmployeeNotFoundError names the missing employee.
type EmployeeNotFoundError struct {
	EmployeeID int
}

func (e *EmployeeNotFoundError) Error() string {
	return fmt.Sprintf("employee with id %d not found", e.EmployeeID)
}

func (e *EmployeeNotFoundError) Unwrap() error {
	return ErrEmployeeNotFound
}

// DependentsNotFoundError names the employee without dependents.
type DependentsNotFoundError struct {
	EmployeeID int
}

func (e *DependentsNotFoundError) Error() string {
	return fmt.Sprintf("no dependents found for employee %d", e.EmployeeID)
}

func (e *DependentsNotFoundError) Unwrap() error {
	return ErrDependentsNotFound
}

// ValidationError reports which employee failed validation.
type ValidationError struct {
	EmployeeID int
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid employee data for employee %d", e.EmployeeID)
	}
	return fmt.Sprintf("invalid employee data for employee %d: %s", e.EmployeeID, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEmployee
}

// UnsupportedPeriodicityError names the rejected periodicity.
type UnsupportedPeriodicityError struct {
	Periodicity string
}

func (e *UnsupportedPeriodicityError) Error() string {
	return fmt.Sprintf("periodicity %q is not implemented", e.Periodicity)
}

func (e *UnsupportedPeriodicityError) Unwrap() error {
	return ErrUnsupportedPeriodicity
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrDependentsNotFound)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidEmployee) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsUnsupported returns true if the request asked for something unimplemented.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedPeriodicity)
}
