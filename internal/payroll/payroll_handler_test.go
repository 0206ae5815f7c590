package payroll_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	payrollMock "go-hrms/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *payrollMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := payrollMock.NewMockService(gomock.NewController(t))
	h := payroll.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.POST("/employees/:id/payslip", h.Generate)
	r.GET("/employees/:id/payslips", h.ListByEmployee)
	r.GET("/payslips/:id/download", h.Download)
	r.POST("/payslips/run", h.Run)
	return r, svc
}

func TestPayrollHandler_Generate(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	empID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().
			Generate(gomock.Any(), actor, empID, payroll.GeneratePayslipRequest{Month: 5, Year: 2026}).
			Return(payroll.PayslipResponse{EmployeeID: empID, Month: 5, Year: 2026, Status: payroll.StatusGenerated}, nil)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/payslip", strings.NewReader(`{"month":5,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"generated"`)
	})

	t.Run("month out of range", func(t *testing.T) {
		r, _ := setupHandler(t, actor)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/payslip", strings.NewReader(`{"month":13,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().Generate(gomock.Any(), actor, empID, gomock.Any()).Return(payroll.PayslipResponse{}, payrollerrors.ErrPayslipAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/payslip", strings.NewReader(`{"month":5,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollHandler_Download(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	r, svc := setupHandler(t, actor)
	id := uuid.NewString()

	svc.EXPECT().Download(gomock.Any(), actor, id).Return([]byte("%PDF-1.3"), "payslip_EMP-0001_2026_05.pdf", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payslips/"+id+"/download", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip_EMP-0001_2026_05.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestPayrollHandler_Run(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleAdmin}
	r, svc := setupHandler(t, actor)

	svc.EXPECT().
		Run(gomock.Any(), actor, payroll.RunPayrollRequest{Month: 6, Year: 2026}).
		Return(payroll.RunPayrollResponse{Queued: 42, Month: 6, Year: 2026}, nil)

	req := httptest.NewRequest(http.MethodPost, "/payslips/run", strings.NewReader(`{"month":6,"year":2026}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"queued":42`)
}
