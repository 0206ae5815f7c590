package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	authMock "go-hrms/internal/auth/mock"
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testCookies = auth.CookieConfig{AccessTTL: 30 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

func setupAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	h := auth.NewHandler(svc, testCookies)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/token", h.Token)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Next()
	}, h.Me)
	return r, svc
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	body := `{"email":"ana@example.com","password":"password123"}`

	t.Run("web client gets cookies", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), "ana@example.com", "password123").
			Return("access", "refresh", auth.AuthResponse{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		access := cookieNamed(rec, middleware.AccessTokenCookie)
		if assert.NotNil(t, access) {
			assert.Equal(t, "access", access.Value)
			assert.True(t, access.HttpOnly)
		}
		assert.NotNil(t, cookieNamed(rec, auth.RefreshTokenCookie))
	})

	t.Run("mobile client gets no cookies", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("access", "refresh", auth.AuthResponse{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "okhttp/4.12")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
	})

	t.Run("validation error", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Token(t *testing.T) {
	r, svc := setupAuthRouter(t)
	svc.EXPECT().
		Login(gomock.Any(), "ana@example.com", "password123").
		Return("access", "refresh", auth.AuthResponse{ID: "u-1", Email: "ana@example.com", Role: "Employee"}, nil)

	form := url.Values{"username": {"ana@example.com"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got auth.TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, "Employee", got.Role)
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Run("web reads cookie", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			RefreshToken(gomock.Any(), "old-refresh").
			Return("new-access", "new-refresh", auth.AuthResponse{ID: "u-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.Header.Set("X-Client-Type", "WEB")
		req.AddCookie(&http.Cookie{Name: auth.RefreshTokenCookie, Value: "old-refresh"})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if c := cookieNamed(rec, auth.RefreshTokenCookie); assert.NotNil(t, c) {
			assert.Equal(t, "new-refresh", c.Value)
		}
	})

	t.Run("web without cookie", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.Header.Set("X-Client-Type", "WEB")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "NO_REFRESH_TOKEN")
	})

	t.Run("api reads body", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			RefreshToken(gomock.Any(), "body-refresh").
			Return("", "", auth.AuthResponse{}, autherrors.ErrRefreshTokenRevoked)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"body-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "API")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	r, svc := setupAuthRouter(t)
	svc.EXPECT().Logout(gomock.Any(), "cookie-refresh").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.RefreshTokenCookie, Value: "cookie-refresh"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	if c := cookieNamed(rec, middleware.AccessTokenCookie); assert.NotNil(t, c) {
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestHandler_Me(t *testing.T) {
	r, svc := setupAuthRouter(t)
	svc.EXPECT().GetMe(gomock.Any(), "u-1").Return(&auth.AuthResponse{ID: "u-1", Email: "ana@example.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}
