package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		actor := middleware.ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.MapClaims{
		"user_id": "emp-1",
		"role":    domain.RoleManager,
		"typ":     middleware.TokenTypeAccess,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name: "bearer token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, valid, testSecret))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"role":"Manager"`,
		},
		{
			name: "cookie token",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: signToken(t, valid, testSecret)})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"emp-1"`,
		},
		{
			name:       "missing token",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, valid, "another-secret-9876543210"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			setup: func(req *http.Request) {
				claims := jwt.MapClaims{"user_id": "emp-1", "typ": middleware.TokenTypeAccess, "exp": time.Now().Add(-time.Minute).Unix()}
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"TOKEN_EXPIRED"`,
		},
		{
			name: "refresh token rejected",
			setup: func(req *http.Request) {
				claims := jwt.MapClaims{"user_id": "emp-1", "typ": "refresh", "exp": time.Now().Add(time.Hour).Unix()}
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			authRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
