package performance_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/performance"
	performanceerrors "go-hrms/internal/performance/errors"
	performanceMock "go-hrms/internal/performance/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *performanceMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := performanceMock.NewMockService(gomock.NewController(t))
	h := performance.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/performance/reports", h.Report)
	r.POST("/employees/:id/ratings", h.CreateRating)
	r.DELETE("/employees/:id/reviews/:review_id", h.DeleteReview)
	return r, svc
}

func TestPerformanceHandler_Report(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	r, svc := setupHandler(t, actor)
	svc.EXPECT().Report(gomock.Any(), actor).Return(performance.Report{
		AverageRating:      4.25,
		RatingDistribution: map[int]int{4: 3, 5: 1},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/performance/reports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"average_rating":4.25`)
	assert.Contains(t, w.Body.String(), `"5":1`)
}

func TestPerformanceHandler_CreateRating(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	empID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().CreateRating(gomock.Any(), actor, empID, gomock.Any()).Return(performance.RatingResponse{Rating: 4}, nil)

		body := `{"rating":4,"period_start":"2026-01-01","period_end":"2026-03-31"}`
		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/ratings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing period", func(t *testing.T) {
		r, _ := setupHandler(t, actor)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+empID+"/ratings", strings.NewReader(`{"rating":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPerformanceHandler_DeleteReview_NotDraft(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	r, svc := setupHandler(t, actor)
	empID, id := uuid.NewString(), uuid.NewString()
	svc.EXPECT().DeleteReview(gomock.Any(), actor, empID, id).Return(performanceerrors.ErrReviewNotDraft)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+empID+"/reviews/"+id, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
