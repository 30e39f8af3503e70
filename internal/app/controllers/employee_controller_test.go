package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/staffdesk/internal/app/controllers"
	"github.com/kaan/staffdesk/internal/app/models"
	"github.com/kaan/staffdesk/internal/app/services"
	"github.com/kaan/staffdesk/internal/pkg/apperrors"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]*models.Employee, error)
	getFn    func(ctx context.Context, id int64) (*models.Employee, error)
	createFn func(ctx context.Context, input services.EmployeeInput) (*models.Employee, error)
	updateFn func(ctx context.Context, id int64, input services.EmployeeInput) (*models.Employee, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubEmployeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s stubEmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if s.getFn == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return s.getFn(ctx, id)
}

func (s stubEmployeeService) CreateEmployee(ctx context.Context, input services.EmployeeInput) (*models.Employee, error) {
	if s.createFn == nil {
		return nil, apperrors.ErrValidationFailed
	}
	return s.createFn(ctx, input)
}

func (s stubEmployeeService) UpdateEmployee(ctx context.Context, id int64, input services.EmployeeInput) (*models.Employee, error) {
	if s.updateFn == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return s.updateFn(ctx, id, input)
}

func (s stubEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return apperrors.ErrEmployeeNotFound
	}
	return s.deleteFn(ctx, id)
}

func newAPITestRouter(svc services.EmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := controllers.NewEmployeeController(svc)
	api := router.Group("/api/v1")
	employees := api.Group("/employees")
	{
		employees.GET("", controller.GetAllEmployees)
		employees.GET("/:id", controller.GetEmployeeByID)
		employees.POST("", controller.CreateEmployee)
		employees.PUT("/:id", controller.UpdateEmployee)
		employees.DELETE("/:id", controller.DeleteEmployee)
	}
	return router
}

func serveJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func sampleEmployee() *models.Employee {
	return &models.Employee{
		ID:        1,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Position:  "Engineer",
		HireDate:  time.Date(1975, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetAllEmployeesAPI(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{
		listFn: func(ctx context.Context) ([]*models.Employee, error) {
			return []*models.Employee{sampleEmployee()}, nil
		},
	})

	recorder := serveJSON(router, http.MethodGet, "/api/v1/employees", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response struct {
		Data []struct {
			ID       int64  `json:"id"`
			Email    string `json:"email"`
			HireDate string `json:"hireDate"`
		} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(response.Data) != 1 || response.Data[0].ID != 1 {
		t.Fatalf("unexpected payload: %+v", response)
	}
	if response.Data[0].HireDate != "1975-01-01" {
		t.Fatalf("expected ISO hire date, got %s", response.Data[0].HireDate)
	}
}

func TestCreateEmployeeAPI(t *testing.T) {
	var gotInput services.EmployeeInput
	router := newAPITestRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input services.EmployeeInput) (*models.Employee, error) {
			gotInput = input
			return sampleEmployee(), nil
		},
	})

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","position":"Engineer","hireDate":"1975-01-01"}`
	recorder := serveJSON(router, http.MethodPost, "/api/v1/employees", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if gotInput.Email != "ada@example.com" || gotInput.HireDate != "1975-01-01" {
		t.Fatalf("unexpected service input: %+v", gotInput)
	}
}

func TestCreateEmployeeAPIDuplicateEmail(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input services.EmployeeInput) (*models.Employee, error) {
			return nil, apperrors.ErrEmailAlreadyExists
		},
	})

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","position":"Engineer","hireDate":"1975-01-01"}`
	recorder := serveJSON(router, http.MethodPost, "/api/v1/employees", body)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
}

func TestCreateEmployeeAPIValidationFailure(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input services.EmployeeInput) (*models.Employee, error) {
			return nil, apperrors.NewValidationError(map[string]string{"hire_date": "Hire date must be in YYYY-MM-DD format"})
		},
	})

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","position":"Engineer","hireDate":"01/02/1975"}`
	recorder := serveJSON(router, http.MethodPost, "/api/v1/employees", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "hire_date") {
		t.Fatalf("expected field detail in response, got %s", recorder.Body.String())
	}
}

func TestCreateEmployeeAPIMissingFields(t *testing.T) {
	called := false
	router := newAPITestRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input services.EmployeeInput) (*models.Employee, error) {
			called = true
			return sampleEmployee(), nil
		},
	})

	body := `{"firstName":"Ada","email":"ada@example.com"}`
	recorder := serveJSON(router, http.MethodPost, "/api/v1/employees", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if called {
		t.Fatal("service must not be called on a bind failure")
	}
	if !strings.Contains(recorder.Body.String(), "required") {
		t.Fatalf("expected required-field messages, got %s", recorder.Body.String())
	}
}

func TestGetEmployeeByIDAPINotFound(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{})

	recorder := serveJSON(router, http.MethodGet, "/api/v1/employees/42", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestGetEmployeeByIDAPIBadID(t *testing.T) {
	called := false
	router := newAPITestRouter(stubEmployeeService{
		getFn: func(ctx context.Context, id int64) (*models.Employee, error) {
			called = true
			return sampleEmployee(), nil
		},
	})

	recorder := serveJSON(router, http.MethodGet, "/api/v1/employees/abc", "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if called {
		t.Fatal("service must not be called for a non-numeric id")
	}
}

func TestUpdateEmployeeAPINotFound(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{})

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","position":"Engineer","hireDate":"1975-01-01"}`
	recorder := serveJSON(router, http.MethodPut, "/api/v1/employees/42", body)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestDeleteEmployeeAPI(t *testing.T) {
	deleted := int64(0)
	router := newAPITestRouter(stubEmployeeService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	recorder := serveJSON(router, http.MethodDelete, "/api/v1/employees/7", "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}
	if deleted != 7 {
		t.Fatalf("expected delete of id 7, got %d", deleted)
	}
}

func TestDeleteEmployeeAPINotFound(t *testing.T) {
	router := newAPITestRouter(stubEmployeeService{})

	recorder := serveJSON(router, http.MethodDelete, "/api/v1/employees/42", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}
