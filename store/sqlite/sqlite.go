/*
Package sqlite provides a SQLite-backed employee directory.

PURPOSE:
  Implements payroll.EmployeeLookup and payroll.DependentLookup on top of
  SQLite so the paycheck service can run against a persistent directory
  instead of the in-memory demo data.

KEY TABLES:
  employees:  Employee records (salary stored as exact decimal text)
  dependents: Dependents, keyed by employee

DECIMALS AND DATES:
  Salary is stored as TEXT and parsed with decimal.NewFromString so no
  float rounding ever reaches the engine. Dates are TEXT in YYYY-MM-DD.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety, the same way as the in-memory
  directory. SQLite is opened in WAL mode so readers don't block.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := payroll.NewPaycheckService(store, store, nil, nil, logger)

SEE ALSO:
  - payroll/service.go: Lookup interfaces
  - store/memory/memory.go: In-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/paycheck-engine/generic"
	"github.com/warp/paycheck-engine/payroll"
)

// Store implements the directory lookups using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// each :memory: connection is its own database
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		salary TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dependents (
		id INTEGER PRIMARY KEY,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		relationship TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_dependents_employee
		ON dependents(employee_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or updates an employee. Dependents on emp are not
// stored; use SaveDependent.
func (s *Store) SaveEmployee(ctx context.Context, emp payroll.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employees (id, first_name, last_name, salary, date_of_birth, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			salary = excluded.salary,
			date_of_birth = excluded.date_of_birth
	`

	_, err := s.db.ExecContext(ctx, query,
		int(emp.ID), emp.FirstName, emp.LastName,
		emp.Salary.String(),
		emp.DateOfBirth.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetEmployee implements payroll.EmployeeLookup.
func (s *Store) GetEmployee(ctx context.Context, id payroll.EmployeeID) (payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		emp              payroll.Employee
		rawID            int
		salary, birthday string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, salary, date_of_birth FROM employees WHERE id = ?",
		int(id),
	).Scan(&rawID, &emp.FirstName, &emp.LastName, &salary, &birthday)

	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Employee{}, &generic.EmployeeNotFoundError{EmployeeID: int(id)}
	}
	if err != nil {
		return payroll.Employee{}, err
	}

	emp.ID = payroll.EmployeeID(rawID)
	if emp.Salary, err = decimal.NewFromString(salary); err != nil {
		return payroll.Employee{}, fmt.Errorf("employee %d salary: %w", rawID, err)
	}
	if emp.DateOfBirth, err = generic.ParseDate(birthday); err != nil {
		return payroll.Employee{}, fmt.Errorf("employee %d date of birth: %w", rawID, err)
	}
	return emp, nil
}

// =============================================================================
// DEPENDENTS
// =============================================================================

// SaveDependent inserts or updates a dependent.
func (s *Store) SaveDependent(ctx context.Context, dep payroll.Dependent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO dependents (id, employee_id, first_name, last_name, relationship, date_of_birth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			employee_id = excluded.employee_id,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			relationship = excluded.relationship,
			date_of_birth = excluded.date_of_birth
	`

	_, err := s.db.ExecContext(ctx, query,
		int(dep.ID), int(dep.EmployeeID), dep.FirstName, dep.LastName,
		string(dep.Relationship),
		dep.DateOfBirth.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetDependentsForEmployee implements payroll.DependentLookup.
// An employee without dependents yields generic.ErrDependentsNotFound.
func (s *Store) GetDependentsForEmployee(ctx context.Context, id payroll.EmployeeID) ([]payroll.Dependent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, first_name, last_name, relationship, date_of_birth
		FROM dependents WHERE employee_id = ? ORDER BY id`,
		int(id),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dependents []payroll.Dependent
	for rows.Next() {
		var (
			dep                  payroll.Dependent
			rawID, rawEmployeeID int
			relationship         string
			birthday             string
		)
		if err := rows.Scan(&rawID, &rawEmployeeID, &dep.FirstName, &dep.LastName, &relationship, &birthday); err != nil {
			return nil, err
		}
		dep.ID = payroll.DependentID(rawID)
		dep.EmployeeID = payroll.EmployeeID(rawEmployeeID)
		dep.Relationship = payroll.Relationship(relationship)
		if dep.DateOfBirth, err = generic.ParseDate(birthday); err != nil {
			return nil, fmt.Errorf("dependent %d date of birth: %w", rawID, err)
		}
		dependents = append(dependents, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(dependents) == 0 {
		return nil, &generic.DependentsNotFoundError{EmployeeID: int(id)}
	}
	return dependents, nil
}

// =============================================================================
// SEEDING
// =============================================================================

// Seed saves employees first, then dependents, so foreign keys resolve.
func (s *Store) Seed(ctx context.Context, employees []payroll.Employee, dependents []payroll.Dependent) error {
	for _, e := range employees {
		if err := s.SaveEmployee(ctx, e); err != nil {
			return fmt.Errorf("seed employee %d: %w", e.ID, err)
		}
	}
	for _, d := range dependents {
		if err := s.SaveDependent(ctx, d); err != nil {
			return fmt.Errorf("seed dependent %d: %w", d.ID, err)
		}
	}
	return nil
}
