package dto

import "github.com/kaan/staffdesk/internal/app/models"

// EmployeeResponse represents employee information returned by the API
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	HireDate  string `json:"hireDate" example:"2019-04-01"`
}

// NewEmployeeResponse maps an employee model to its API representation.
func NewEmployeeResponse(employee *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
		Position:  employee.Position,
		HireDate:  employee.HireDateString(),
	}
}

// NewEmployeeListResponse maps a slice of employees to API representations.
func NewEmployeeListResponse(employees []*models.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, NewEmployeeResponse(employee))
	}
	return responses
}

// CreateEmployeeRequest represents employee creation data
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Position  string `json:"position" binding:"required,max=50"`
	HireDate  string `json:"hireDate" binding:"required" example:"2019-04-01"`
}

// UpdateEmployeeRequest represents employee update data; all five fields are
// rewritten on every update.
type UpdateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Position  string `json:"position" binding:"required,max=50"`
	HireDate  string `json:"hireDate" binding:"required" example:"2019-04-01"`
}

// EmployeeForm represents the HTML form payload for the create and update
// pages. Validation happens in the service so incomplete submissions come
// back with field errors instead of a bind failure.
type EmployeeForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	Position  string `form:"position"`
	HireDate  string `form:"hire_date"`
}

// FormFromEmployee pre-fills the form with an existing record's values.
func FormFromEmployee(employee *models.Employee) EmployeeForm {
	return EmployeeForm{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
		Position:  employee.Position,
		HireDate:  employee.HireDateString(),
	}
}
