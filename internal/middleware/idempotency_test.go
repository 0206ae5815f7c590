package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func idempotentRouter(rdb redis.Cmdable, handled *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextUserID, "emp-1") })
	r.POST("/payslips/run", middleware.ExtractUserID(), middleware.Idempotency(rdb), func(c *gin.Context) {
		*handled++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func postRun(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payslips/run", nil)
	if key != "" {
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/payslips/run:emp-1:k1"

	t.Run("replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)
		handled := 0

		w := postRun(idempotentRouter(rdb, &handled), "k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get(middleware.HeaderIdempotentHit))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Zero(t, handled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)
		handled := 0

		w := postRun(idempotentRouter(rdb, &handled), "k1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Zero(t, handled)
	})

	t.Run("no key skips the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		handled := 0

		w := postRun(idempotentRouter(rdb, &handled), "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, handled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
