package course_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/course"
	courseerrors "go-hrms/internal/course/errors"
	courseMock "go-hrms/internal/course/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *courseMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := courseMock.NewMockService(gomock.NewController(t))
	h := course.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/courses", h.List)
	r.GET("/courses/:id", h.GetById)
	r.POST("/employees/:id/courses", h.Enroll)
	r.PUT("/employees/:id/courses/:enrollment_id", h.UpdateEnrollment)
	return r, svc
}

func TestCourseHandler_List(t *testing.T) {
	r, svc := setupHandler(t, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee})
	svc.EXPECT().List(gomock.Any()).Return([]course.CourseResponse{{Title: "Go Fundamentals", Status: course.CourseActive}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Go Fundamentals"`)
}

func TestCourseHandler_GetById_NotFound(t *testing.T) {
	r, svc := setupHandler(t, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee})
	id := uuid.NewString()
	svc.EXPECT().GetByID(gomock.Any(), id).Return(course.CourseResponse{}, courseerrors.ErrCourseNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandler_Enroll(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		courseID := uuid.NewString()
		svc.EXPECT().Enroll(gomock.Any(), actor, actor.ID, course.EnrollRequest{CourseID: courseID}).
			Return(course.EnrollmentResponse{ID: uuid.NewString(), Status: course.EnrollmentEnrolled}, nil)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+actor.ID+"/courses", strings.NewReader(`{"course_id":"`+courseID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing course id", func(t *testing.T) {
		r, _ := setupHandler(t, actor)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+actor.ID+"/courses", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCourseHandler_UpdateEnrollment_RejectsUnknownStatus(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}
	r, _ := setupHandler(t, actor)

	req := httptest.NewRequest(http.MethodPut, "/employees/"+actor.ID+"/courses/"+uuid.NewString(), strings.NewReader(`{"status":"passed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
