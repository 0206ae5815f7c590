package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	department.Service
	CreateFn         func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn         func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn        func(ctx context.Context, id string) (department.DepartmentResponse, error)
	DeleteFn         func(ctx context.Context, id string) error
	AddEmployeeFn    func(ctx context.Context, id string, req department.AssignEmployeeRequest) (department.MemberResponse, error)
	RemoveEmployeeFn func(ctx context.Context, id, employeeID string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeDepartmentService) AddEmployee(ctx context.Context, id string, req department.AssignEmployeeRequest) (department.MemberResponse, error) {
	return f.AddEmployeeFn(ctx, id, req)
}
func (f *fakeDepartmentService) RemoveEmployee(ctx context.Context, id, employeeID string) error {
	return f.RemoveEmployeeFn(ctx, id, employeeID)
}

func setupRouter(h *department.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/departments", h.GetAll)
	r.POST("/departments", h.Create)
	r.GET("/departments/:id", h.GetById)
	r.DELETE("/departments/:id", h.Delete)
	r.POST("/departments/:id/employees", h.AddEmployee)
	r.DELETE("/departments/:id/employees/:employee_id", h.RemoveEmployee)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}
		r := setupRouter(department.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupRouter(department.NewHandler(&fakeDepartmentService{}))

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentAlreadyExists
			},
		}
		r := setupRouter(department.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("failed")
			},
		}
		r := setupRouter(department.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
			return []department.DepartmentResponse{{ID: uuid.New().String(), Name: "HR"}}, nil
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"HR"`)
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	deptID := uuid.New().String()
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			assert.Equal(t, deptID, id)
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/"+deptID, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id string) error {
			return departmenterrors.ErrDepartmentHasEmployees
		},
	}
	r := setupRouter(department.NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDepartmentHandler_Members(t *testing.T) {
	deptID := uuid.New().String()
	empID := uuid.New().String()

	t.Run("add", func(t *testing.T) {
		svc := &fakeDepartmentService{
			AddEmployeeFn: func(ctx context.Context, id string, req department.AssignEmployeeRequest) (department.MemberResponse, error) {
				assert.Equal(t, deptID, id)
				assert.Equal(t, empID, req.UserID)
				return department.MemberResponse{ID: req.UserID}, nil
			},
		}
		r := setupRouter(department.NewHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/departments/"+deptID+"/employees", strings.NewReader(`{"user_id":"`+empID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("remove not in department", func(t *testing.T) {
		svc := &fakeDepartmentService{
			RemoveEmployeeFn: func(ctx context.Context, id, employeeID string) error {
				assert.Equal(t, empID, employeeID)
				return departmenterrors.ErrEmployeeNotInDepartment
			},
		}
		r := setupRouter(department.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/departments/"+deptID+"/employees/"+empID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
