package salary_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/salary"
	salaryerrors "go-hrms/internal/salary/errors"
	salaryMock "go-hrms/internal/salary/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *salaryMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := salaryMock.NewMockService(gomock.NewController(t))
	h := salary.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/employees/:id/salary", h.GetCurrent)
	r.PUT("/employees/:id/salary", h.Update)
	r.PUT("/employees/:id/tax", h.UpsertTaxInfo)
	return r, svc
}

func TestSalaryHandler_Update(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	empID := uuid.NewString()
	r, svc := setupHandler(t, actor)

	basic := 1200.5
	svc.EXPECT().
		Update(gomock.Any(), empID, salary.UpdateSalaryRequest{BasicSalary: &basic}).
		Return(salary.SalaryResponse{EmployeeID: empID, BasicSalary: basic, GrossSalary: basic, NetSalary: basic}, nil)

	req := httptest.NewRequest(http.MethodPut, "/employees/"+empID+"/salary", strings.NewReader(`{"basic_salary":1200.5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"net_salary":1200.5`)
}

func TestSalaryHandler_GetCurrent_NotFound(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	r, svc := setupHandler(t, actor)

	svc.EXPECT().GetCurrent(gomock.Any(), actor, actor.ID).Return(salary.SalaryResponse{}, salaryerrors.ErrSalaryNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+actor.ID+"/salary", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "salary details not found")
}

func TestSalaryHandler_UpsertTaxInfo_MissingPAN(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	r, _ := setupHandler(t, actor)

	req := httptest.NewRequest(http.MethodPut, "/employees/"+actor.ID+"/tax", strings.NewReader(`{"tax_regime":"new"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
