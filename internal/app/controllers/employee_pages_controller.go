package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/staffdesk/internal/app/models/dto"
	"github.com/kaan/staffdesk/internal/app/services"
	"github.com/kaan/staffdesk/internal/pkg/apperrors"
)

// EmployeePagesController serves the server-rendered HTML pages: the employee
// table, the create/update forms and the delete confirmation page.
type EmployeePagesController struct {
	employeeService services.EmployeeService
}

// NewEmployeePagesController creates a new EmployeePagesController
func NewEmployeePagesController(employeeService services.EmployeeService) *EmployeePagesController {
	return &EmployeePagesController{
		employeeService: employeeService,
	}
}

// Home renders the employee table, ordered by last name then first name.
func (c *EmployeePagesController) Home(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "home.html", gin.H{
		"employees": employees,
	})
}

// CreateForm renders a blank creation form.
func (c *EmployeePagesController) CreateForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "create.html", gin.H{
		"form": dto.EmployeeForm{},
	})
}

// CreateEmployee processes the creation form. On success it redirects to the
// listing; on validation failure it re-renders the form with the submitted
// values and per-field errors.
func (c *EmployeePagesController) CreateEmployee(ctx *gin.Context) {
	var form dto.EmployeeForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderError(ctx, err)
		return
	}

	_, err := c.employeeService.CreateEmployee(ctx, formInput(form))
	if err != nil {
		if fields := formErrors(err); fields != nil {
			ctx.HTML(http.StatusOK, "create.html", gin.H{
				"form":   form,
				"errors": fields,
			})
			return
		}
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// UpdateForm renders the update form pre-filled with the record's current
// values, or a not-found page when the id does not resolve.
func (c *EmployeePagesController) UpdateForm(ctx *gin.Context) {
	id, ok := c.pageID(ctx)
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "update.html", gin.H{
		"id":   employee.ID,
		"form": dto.FormFromEmployee(employee),
	})
}

// UpdateEmployee processes the update form. Validation failure re-renders the
// form with the submitted values; the stored record stays unchanged.
func (c *EmployeePagesController) UpdateEmployee(ctx *gin.Context) {
	id, ok := c.pageID(ctx)
	if !ok {
		return
	}

	var form dto.EmployeeForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderError(ctx, err)
		return
	}

	_, err := c.employeeService.UpdateEmployee(ctx, id, formInput(form))
	if err != nil {
		if fields := formErrors(err); fields != nil {
			ctx.HTML(http.StatusOK, "update.html", gin.H{
				"id":     id,
				"form":   form,
				"errors": fields,
			})
			return
		}
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// ConfirmDelete renders a confirmation page before anything is removed.
// Deletion itself only happens on the POST route.
func (c *EmployeePagesController) ConfirmDelete(ctx *gin.Context) {
	id, ok := c.pageID(ctx)
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "delete.html", gin.H{
		"employee": employee,
	})
}

// DeleteEmployee permanently removes the record and redirects to the listing.
func (c *EmployeePagesController) DeleteEmployee(ctx *gin.Context) {
	id, ok := c.pageID(ctx)
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// pageID reads the :id path parameter; a non-numeric id renders the
// not-found page, matching how a typed URL pattern would behave.
func (c *EmployeePagesController) pageID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.HTML(http.StatusNotFound, "notfound.html", nil)
		return 0, false
	}
	return id, true
}

// renderError maps service errors to the not-found or generic error page.
func (c *EmployeePagesController) renderError(ctx *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrEmployeeNotFound) || errors.Is(err, apperrors.ErrResourceNotFound) {
		ctx.HTML(http.StatusNotFound, "notfound.html", nil)
		return
	}
	ctx.HTML(http.StatusInternalServerError, "error.html", nil)
}

// formInput maps the HTML form payload to the service input.
func formInput(form dto.EmployeeForm) services.EmployeeInput {
	return services.EmployeeInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Position:  form.Position,
		HireDate:  form.HireDate,
	}
}

// formErrors extracts field errors for form re-rendering. A duplicate email
// is reported on the email field rather than surfacing as a server error.
func formErrors(err error) map[string]string {
	if fields := apperrors.FieldErrors(err); fields != nil {
		return fields
	}
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return map[string]string{"email": "An employee with this email already exists"}
	}
	return nil
}
