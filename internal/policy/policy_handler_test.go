package policy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/policy"
	policyerrors "go-hrms/internal/policy/errors"
	policyMock "go-hrms/internal/policy/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *policyMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := policyMock.NewMockService(gomock.NewController(t))
	h := policy.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/policies/compliance", h.ComplianceReport)
	r.POST("/policies/:id/acknowledge", h.Acknowledge)
	r.GET("/employees/:id/compliance", h.EmployeeCompliance)
	return r, svc
}

func TestPolicyHandler_Acknowledge(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	id := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().Acknowledge(gomock.Any(), actor, id).Return(policy.AcknowledgmentResponse{PolicyID: id, VersionAcknowledged: "1.0"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/policies/"+id+"/acknowledge", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"version_acknowledged":"1.0"`)
	})

	t.Run("duplicate", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().Acknowledge(gomock.Any(), actor, id).Return(policy.AcknowledgmentResponse{}, policyerrors.ErrAlreadyAcknowledged)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/policies/"+id+"/acknowledge", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPolicyHandler_EmployeeCompliance(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	r, svc := setupHandler(t, actor)
	svc.EXPECT().EmployeeCompliance(gomock.Any(), actor, actor.ID).
		Return(policy.ComplianceStatus{EmployeeID: actor.ID, ComplianceRate: 1}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+actor.ID+"/compliance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"compliance_rate":1`)
}

func TestPolicyHandler_ComplianceReport(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	r, svc := setupHandler(t, actor)
	svc.EXPECT().ComplianceReport(gomock.Any(), actor).Return([]policy.ComplianceStatus{{EmployeeID: uuid.NewString()}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policies/compliance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
