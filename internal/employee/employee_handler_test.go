package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context, actor domain.Actor, filter employee.Filter) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, actor domain.Actor, id string) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, actor domain.Actor, filter employee.Filter) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, actor, filter)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, actor domain.Actor, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, actor, id)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withActor(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John", req.FirstName)
				return employee.EmployeeResponse{ID: employeeID, FirstName: "John", EmployeeNumber: "EMP-000001"}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"first_name":"John","last_name":"Doe","email":"john@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), employeeID)
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(&fakeEmployeeService{}).Create)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"first_name":"John","email":"bad","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"first_name":"John","last_name":"Doe","email":"john@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, actor domain.Actor, filter employee.Filter) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "mgr-1", actor.ID)
			assert.Equal(t, domain.RoleManager, actor.Role)
			assert.Equal(t, "ann", filter.Name)
			assert.Equal(t, "active", filter.Status)
			return []employee.EmployeeResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/employees", withActor("mgr-1", domain.RoleManager), employee.NewHandler(svc).GetAll)

	req := httptest.NewRequest(http.MethodGet, "/employees?name=ann&status=active&page=2&page_size=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []employee.EmployeeResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "3", body.Data[0].ID)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
}

func TestEmployeeHandler_GetById_Forbidden(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, actor domain.Actor, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, apperror.ErrForbidden
		},
	}
	r := setupRouter()
	r.GET("/employees/:id", withActor("emp-2", domain.RoleEmployee), employee.NewHandler(svc).GetById)

	req := httptest.NewRequest(http.MethodGet, "/employees/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestEmployeeHandler_Delete(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			return nil
		},
	}
	r := setupRouter()
	r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

	req := httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"deleted":true}}`, w.Body.String())
}
