// Package memory provides an in-memory employee directory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
	"github.com/warp/paycheck-engine/payroll"
)

// =============================================================================
// MEMORY DIRECTORY - In-memory lookups (for testing/dev)
// =============================================================================

// Directory implements payroll.EmployeeLookup and payroll.DependentLookup.
type Directory struct {
	mu         sync.RWMutex
	employees  map[payroll.EmployeeID]payroll.Employee
	byEmployee map[payroll.EmployeeID][]payroll.Dependent
}

func NewDirectory() *Directory {
	return &Directory{
		employees:  make(map[payroll.EmployeeID]payroll.Employee),
		byEmployee: make(map[payroll.EmployeeID][]payroll.Dependent),
	}
}

// NewDemoDirectory returns a directory loaded with DemoEmployees and
// DemoDependents.
func NewDemoDirectory() *Directory {
	d := NewDirectory()
	for _, e := range DemoEmployees() {
		d.PutEmployee(e)
	}
	for _, dep := range DemoDependents() {
		d.PutDependent(dep)
	}
	return d
}

// PutEmployee adds or replaces an employee. Any Dependents on e are ignored;
// dependents are registered with PutDependent.
func (d *Directory) PutEmployee(e payroll.Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e.Dependents = nil
	d.employees[e.ID] = e
}

// PutDependent adds a dependent, keeping each employee's list ordered by ID.
func (d *Directory) PutDependent(dep payroll.Dependent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	deps := d.byEmployee[dep.EmployeeID]
	i := sort.Search(len(deps), func(i int) bool { return deps[i].ID >= dep.ID })
	if i < len(deps) && deps[i].ID == dep.ID {
		deps[i] = dep
		return
	}
	deps = append(deps, payroll.Dependent{})
	copy(deps[i+1:], deps[i:])
	deps[i] = dep
	d.byEmployee[dep.EmployeeID] = deps
}

func (d *Directory) GetEmployee(ctx context.Context, id payroll.EmployeeID) (payroll.Employee, error) {
	if err := ctx.Err(); err != nil {
		return payroll.Employee{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.employees[id]
	if !ok {
		return payroll.Employee{}, &generic.EmployeeNotFoundError{EmployeeID: int(id)}
	}
	return e, nil
}

func (d *Directory) GetDependentsForEmployee(ctx context.Context, id payroll.EmployeeID) ([]payroll.Dependent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	deps := d.byEmployee[id]
	if len(deps) == 0 {
		return nil, &generic.DependentsNotFoundError{EmployeeID: int(id)}
	}
	result := make([]payroll.Dependent, len(deps))
	copy(result, deps)
	return result, nil
}

// =============================================================================
// DEMO DATA
// =============================================================================

func DemoEmployees() []payroll.Employee {
	return []payroll.Employee{
		{
			ID:          1,
			FirstName:   "LeBron",
			LastName:    "James",
			Salary:      decimal.RequireFromString("75420.99"),
			DateOfBirth: generic.MustParseDate("1984-12-30"),
		},
		{
			ID:          2,
			FirstName:   "Ja",
			LastName:    "Morant",
			Salary:      decimal.RequireFromString("92365.22"),
			DateOfBirth: generic.MustParseDate("1999-08-10"),
		},
		{
			ID:          3,
			FirstName:   "Michael",
			LastName:    "Jordan",
			Salary:      decimal.RequireFromString("143211.12"),
			DateOfBirth: generic.MustParseDate("1963-02-17"),
		},
	}
}

func DemoDependents() []payroll.Dependent {
	return []payroll.Dependent{
		{
			ID:           1,
			EmployeeID:   2,
			FirstName:    "Spouse",
			LastName:     "Morant",
			Relationship: payroll.RelationshipSpouse,
			DateOfBirth:  generic.MustParseDate("1998-03-03"),
		},
		{
			ID:           2,
			EmployeeID:   2,
			FirstName:    "Child1",
			LastName:     "Morant",
			Relationship: payroll.RelationshipChild,
			DateOfBirth:  generic.MustParseDate("2020-06-23"),
		},
		{
			ID:           3,
			EmployeeID:   2,
			FirstName:    "Child2",
			LastName:     "Morant",
			Relationship: payroll.RelationshipChild,
			DateOfBirth:  generic.MustParseDate("2021-05-18"),
		},
		{
			ID:           4,
			EmployeeID:   3,
			FirstName:    "DP",
			LastName:     "Jordan",
			Relationship: payroll.RelationshipDomesticPartner,
			DateOfBirth:  generic.MustParseDate("1974-01-02"),
		},
	}
}
