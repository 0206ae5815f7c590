package certification_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/certification"
	certificationerrors "go-hrms/internal/certification/errors"
	certificationMock "go-hrms/internal/certification/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, actor domain.Actor) (*gin.Engine, *certificationMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := certificationMock.NewMockService(gomock.NewController(t))
	h := certification.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, actor.ID)
		c.Set(middleware.ContextRole, actor.Role)
		c.Next()
	})
	r.GET("/certification-types", h.ListTypes)
	r.DELETE("/certification-types/:id", h.DeleteType)
	r.POST("/employees/:id/certifications", h.Create)
	return r, svc
}

func TestCertificationHandler_ListTypes(t *testing.T) {
	r, svc := setupHandler(t, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee})
	svc.EXPECT().ListTypes(gomock.Any()).Return([]certification.TypeResponse{{Name: "CKA", ValidityPeriod: 24}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/certification-types", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"validity_period":24`)
}

func TestCertificationHandler_DeleteType_InUse(t *testing.T) {
	r, svc := setupHandler(t, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR})
	id := uuid.NewString()
	svc.EXPECT().DeleteType(gomock.Any(), id).Return(certificationerrors.ErrTypeInUse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/certification-types/"+id, nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCertificationHandler_Create(t *testing.T) {
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("passes actor through", func(t *testing.T) {
		r, svc := setupHandler(t, actor)
		svc.EXPECT().Create(gomock.Any(), actor, actor.ID, gomock.Any()).
			Return(certification.CertificationResponse{ID: uuid.NewString(), IssueDate: "2025-03-15"}, nil)

		body := `{"certification_type_id":"` + uuid.NewString() + `","issue_date":"2025-03-15"}`
		req := httptest.NewRequest(http.MethodPost, "/employees/"+actor.ID+"/certifications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("issue date required", func(t *testing.T) {
		r, _ := setupHandler(t, actor)

		body := `{"certification_type_id":"` + uuid.NewString() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/employees/"+actor.ID+"/certifications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
