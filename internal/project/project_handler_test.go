package project_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/project"
	projecterrors "go-hrms/internal/project/errors"
	projectMock "go-hrms/internal/project/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *projectMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := projectMock.NewMockService(gomock.NewController(t))
	h := project.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/projects", h.List)
	r.POST("/employees/:id/projects", h.Assign)
	r.DELETE("/employees/:id/projects/:project_id", h.RemoveAssignment)
	return r, svc
}

func TestProjectHandler_List_FiltersByStatus(t *testing.T) {
	r, svc := setupHandler(t, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee})
	svc.EXPECT().List(gomock.Any(), project.StatusActive).
		Return([]project.ProjectResponse{{Name: "Payments Revamp", Status: project.StatusActive}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects?status=active", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Payments Revamp"`)
}

func TestProjectHandler_Assign(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	empID := uuid.NewString()

	t.Run("over allocated", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		projID := uuid.NewString()
		svc.EXPECT().Assign(gomock.Any(), actor, empID, gomock.Any()).
			Return(project.AssignmentResponse{}, projecterrors.ErrOverAllocated)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/projects",
			strings.NewReader(`{"project_id":"`+projID+`","allocation_percentage":60}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing project id", func(t *testing.T) {
		r, _ := setupHandler(t, actor)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/projects", strings.NewReader(`{"role":"QA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectHandler_RemoveAssignment_NotFound(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	r, svc := setupHandler(t, actor)
	empID, projID := uuid.NewString(), uuid.NewString()
	svc.EXPECT().RemoveAssignment(gomock.Any(), empID, projID).Return(projecterrors.ErrAssignmentNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+empID+"/projects/"+projID, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
