package payroll_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	payrollMock "go-hrms/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type enforcerFunc func(req domain.EnforceRequest) (bool, error)

func (f enforcerFunc) Enforce(req domain.EnforceRequest) (bool, error) {
	return f(req)
}

func TestRegisterRoutes_AuthorizesBeforeIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hrOnly := enforcerFunc(func(req domain.EnforceRequest) (bool, error) {
		return req.Role == domain.RoleHR, nil
	})

	setup := func(t *testing.T, actor domain.Actor) (*gin.Engine, *payrollMock.MockService, redismock.ClientMock) {
		svc := payrollMock.NewMockService(gomock.NewController(t))
		rdb, mock := redismock.NewClientMock()

		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserID, actor.ID)
			c.Set(middleware.ContextRole, actor.Role)
			c.Next()
		})
		payroll.RegisterRoutes(r.Group(""), payroll.NewHandler(svc), hrOnly, rdb)
		return r, svc, mock
	}

	t.Run("forbidden caller never reaches a cached response", func(t *testing.T) {
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
		r, _, mock := setup(t, actor)
		mock.ExpectGet("idemp:/payslips/run:" + actor.ID + ":run-may").
			SetVal(`{"status":202,"body":{"ok":true,"data":{"queued":40,"month":5,"year":2026}}}`)

		req := httptest.NewRequest(http.MethodPost, "/payslips/run", strings.NewReader(`{"month":5,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderIdempotencyKey, "run-may")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get(middleware.HeaderIdempotentHit))
		assert.Contains(t, w.Body.String(), "payslip:generate")
	})

	t.Run("forbidden generate does not touch redis", func(t *testing.T) {
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
		r, _, mock := setup(t, actor)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+uuid.NewString()+"/payslip", strings.NewReader(`{"month":5,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderIdempotencyKey, "gen-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("authorized run reaches the handler", func(t *testing.T) {
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
		r, svc, _ := setup(t, actor)
		svc.EXPECT().
			Run(gomock.Any(), actor, payroll.RunPayrollRequest{Month: 5, Year: 2026}).
			Return(payroll.RunPayrollResponse{Queued: 3, Month: 5, Year: 2026}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payslips/run", strings.NewReader(`{"month":5,"year":2026}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"queued":3`)
	})
}
