package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/kaan/staffdesk/internal/app/models"
	"github.com/kaan/staffdesk/internal/pkg/apperrors"
	"github.com/kaan/staffdesk/internal/pkg/validation"
)

// EmployeeStore is the storage access needed by the employee service.
// Tests substitute an in-memory implementation.
type EmployeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeInput carries the raw form/request fields for create and update.
// The hire date stays a string until validation parses it.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Position  string
	HireDate  string
}

// EmployeeService handles employee-related operations
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, input EmployeeInput) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, input EmployeeInput) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type employeeService struct {
	store  EmployeeStore
	logger zerolog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(store EmployeeStore, lgr zerolog.Logger) EmployeeService {
	return &employeeService{
		store:  store,
		logger: lgr,
	}
}

// validateInput checks all five fields and returns a validation error
// carrying one message per offending field. Checks run against the trimmed
// values, since those are what gets stored; lengths count characters, not
// bytes, matching the VARCHAR column limits.
func validateInput(input EmployeeInput) (time.Time, error) {
	fields := make(map[string]string)

	if firstName := strings.TrimSpace(input.FirstName); firstName == "" {
		fields["first_name"] = "First name is required"
	} else if utf8.RuneCountInString(firstName) > validation.NameMaxLength {
		fields["first_name"] = fmt.Sprintf("First name must be at most %d characters", validation.NameMaxLength)
	}

	if lastName := strings.TrimSpace(input.LastName); lastName == "" {
		fields["last_name"] = "Last name is required"
	} else if utf8.RuneCountInString(lastName) > validation.NameMaxLength {
		fields["last_name"] = fmt.Sprintf("Last name must be at most %d characters", validation.NameMaxLength)
	}

	if email := strings.TrimSpace(input.Email); email == "" {
		fields["email"] = "Email is required"
	} else if !validation.IsValidEmail(email) {
		fields["email"] = "Email must be a valid email address"
	}

	if position := strings.TrimSpace(input.Position); position == "" {
		fields["position"] = "Position is required"
	} else if utf8.RuneCountInString(position) > validation.PositionMaxLength {
		fields["position"] = fmt.Sprintf("Position must be at most %d characters", validation.PositionMaxLength)
	}

	var hireDate time.Time
	if strings.TrimSpace(input.HireDate) == "" {
		fields["hire_date"] = "Hire date is required"
	} else {
		parsed, ok := validation.ParseDate(input.HireDate)
		if !ok {
			fields["hire_date"] = "Hire date must be in YYYY-MM-DD format"
		} else {
			hireDate = parsed
		}
	}

	if len(fields) > 0 {
		return time.Time{}, apperrors.NewValidationError(fields)
	}

	return hireDate, nil
}

// ListEmployees retrieves all employees in last-name, first-name order.
func (s *employeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeByID retrieves an employee by ID
func (s *employeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if id <= 0 {
		return nil, apperrors.ErrEmployeeNotFound
	}

	employee, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// CreateEmployee validates the input and inserts a new employee record.
func (s *employeeService) CreateEmployee(ctx context.Context, input EmployeeInput) (*models.Employee, error) {
	hireDate, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Position:  strings.TrimSpace(input.Position),
		HireDate:  hireDate,
	}

	if err := s.store.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", employee.ID).Str("email", employee.Email).Msg("Employee created")
	return employee, nil
}

// UpdateEmployee validates the input and overwrites all five fields of an
// existing record. The stored record stays untouched when validation fails.
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, input EmployeeInput) (*models.Employee, error) {
	if id <= 0 {
		return nil, apperrors.ErrEmployeeNotFound
	}

	// Resolve the record first so a nonexistent id reports not-found even
	// when the submitted fields are invalid.
	employee, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hireDate, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	// A duplicate email is reported as a field error up front; the unique
	// constraint still backstops concurrent writers.
	exists, err := s.store.ExistsByEmail(ctx, strings.TrimSpace(input.Email), id)
	if err != nil {
		return nil, fmt.Errorf("error checking employee email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	employee.FirstName = strings.TrimSpace(input.FirstName)
	employee.LastName = strings.TrimSpace(input.LastName)
	employee.Email = strings.TrimSpace(input.Email)
	employee.Position = strings.TrimSpace(input.Position)
	employee.HireDate = hireDate

	if err := s.store.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", employee.ID).Msg("Employee updated")
	return employee, nil
}

// DeleteEmployee permanently removes an employee record.
func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrEmployeeNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Employee deleted")
	return nil
}
