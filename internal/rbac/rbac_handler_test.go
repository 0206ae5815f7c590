package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	Service
	enforceFn    func(req domain.EnforceRequest) (bool, error)
	deleteRoleFn func(ctx context.Context, id string) error
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func (f *fakeService) DeleteRole(ctx context.Context, id string) error {
	return f.deleteRoleFn(ctx, id)
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{enforceFn: func(req domain.EnforceRequest) (bool, error) {
		return req.Role == domain.RoleManager && req.Resource == "leave" && req.Action == "approve", nil
	}}
	handler := NewHandler(svc)

	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("allowed", func(t *testing.T) {
		body, _ := json.Marshal(domain.EnforceRequest{Role: domain.RoleManager, Resource: "leave", Action: "approve"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"allowed":true}}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_DeleteRole_Builtin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{deleteRoleFn: func(ctx context.Context, id string) error {
		return rbacerrors.ErrBuiltinRole
	}}
	router := gin.New()
	router.DELETE("/rbac/roles/:id", NewHandler(svc).DeleteRole)

	req := httptest.NewRequest(http.MethodDelete, "/rbac/roles/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}
