package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageParams reads page and page_size from the query string.
func PageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

// Paginate slices an in-memory result set for one page.
func Paginate[T any](items []T, page, pageSize int) ([]T, PaginationMeta) {
	total := len(items)
	meta := NewPaginationMeta(int64(total), page, pageSize)

	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, meta
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], meta
}

// List writes a paginated 200 from a full result set.
func List[T any](c *gin.Context, items []T) {
	page, pageSize := PageParams(c)
	data, meta := Paginate(items, page, pageSize)
	Success(c, 200, data, &meta)
}
