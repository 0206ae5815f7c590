package onboarding_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/onboarding"
	onboardingMock "go-hrms/internal/onboarding/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*gin.Engine, *onboardingMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := onboardingMock.NewMockService(gomock.NewController(t))
	h := onboarding.NewHandler(svc)

	r := gin.New()
	for _, kind := range []string{onboarding.KindOnboarding, onboarding.KindOffboarding} {
		r.GET("/"+kind+"/tasks", h.ListTemplates(kind))
		r.POST("/employees/:id/"+kind+"/assign", h.Assign(kind))
		r.PUT("/employees/:id/"+kind+"/:task_id", h.UpdateEmployeeTask(kind))
	}
	return r, svc
}

func TestOnboardingHandler_ListTemplates_BindsKind(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().ListTemplates(gomock.Any(), onboarding.KindOffboarding).
		Return([]onboarding.TaskResponse{{Kind: onboarding.KindOffboarding, Title: "Return laptop"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/offboarding/tasks", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Return laptop"`)
}

func TestOnboardingHandler_Assign(t *testing.T) {
	r, svc := setupHandler(t)
	empID := uuid.NewString()
	svc.EXPECT().AssignTemplates(gomock.Any(), empID, onboarding.KindOnboarding).Return(3, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/onboarding/assign", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"assigned":3`)
}

func TestOnboardingHandler_UpdateEmployeeTask_ValidatesStatus(t *testing.T) {
	r, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/employees/"+uuid.NewString()+"/onboarding/"+uuid.NewString(), strings.NewReader(`{"status":"skipped"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
