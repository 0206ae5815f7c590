package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := response.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	page, _ = response.Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, page)

	page, _ = response.Paginate(items, 9, 2)
	assert.Empty(t, page)
}

func TestList_ReadsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=1", nil)

	response.List(c, []string{"a", "b", "c"})

	var body struct {
		Ok   bool                    `json:"ok"`
		Data []string                `json:"data"`
		Meta response.PaginationMeta `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, []string{"b"}, body.Data)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestAppError_HidesUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.AppError(c, errors.New("dial tcp: refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeInternalError)
	assert.NotContains(t, w.Body.String(), "refused")
}
