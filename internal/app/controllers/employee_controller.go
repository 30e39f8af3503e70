package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/staffdesk/internal/app/models/dto"
	"github.com/kaan/staffdesk/internal/app/services"
	"github.com/kaan/staffdesk/internal/middleware"
)

// EmployeeController handles employee-related API operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// GetAllEmployees retrieves all employees
// @Summary Get all employees
// @Description Retrieves all employees ordered by last name, then first name
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EmployeeResponse} "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEmployeeListResponse(employees),
		Timestamp: time.Now(),
	})
}

// GetEmployeeByID retrieves an employee by ID
// @Summary Get employee by ID
// @Description Retrieves a specific employee by its ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEmployeeResponse(employee),
		Timestamp: time.Now(),
	})
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates a new employee with the provided information
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, services.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Position:  req.Position,
		HireDate:  req.HireDate,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewEmployeeResponse(employee),
		Timestamp: time.Now(),
	})
}

// UpdateEmployee updates an existing employee
// @Summary Update an employee
// @Description Overwrites all fields of an existing employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Updated employee information"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx, id, services.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Position:  req.Position,
		HireDate:  req.HireDate,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEmployeeResponse(employee),
		Timestamp: time.Now(),
	})
}

// DeleteEmployee deletes an employee
// @Summary Delete an employee
// @Description Permanently deletes an employee by its ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 204 "Employee deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseEmployeeID reads the :id path parameter, answering 400 on bad input.
func parseEmployeeID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee ID")
		errorDetail = errorDetail.WithDetails("Employee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
