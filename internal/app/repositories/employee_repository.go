package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/staffdesk/internal/app/models"
	"github.com/kaan/staffdesk/internal/pkg/apperrors"
	"github.com/kaan/staffdesk/internal/pkg/dberrors"
)

// emailUniqueConstraint is the unique index on employees.email.
const emailUniqueConstraint = "employees_email_key"

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee and fills in the generated ID.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, position, hire_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Position,
		employee.HireDate,
	).Scan(&employee.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, position, hire_date
		FROM employees
		WHERE id = $1
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Position,
		&employee.HireDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return &employee, nil
}

// GetAll retrieves all employees ordered by last name, then first name.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, position, hire_date
		FROM employees
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.Position,
			&employee.HireDate,
		); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ExistsByEmail checks whether an employee with the given email exists,
// excluding the record with excludeID (pass 0 to check all records).
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking employee email: %w", err)
	}

	return exists, nil
}

// Update overwrites all five fields of an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, position = $4, hire_date = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Position,
		employee.HireDate,
		employee.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// Delete deletes an employee by ID
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}
