package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/employees?"+rawQuery, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{"defaults", "", PaginationParams{Page: 1, Limit: 15, Offset: 0}},
		{"explicit", "page=3&limit=20", PaginationParams{Page: 3, Limit: 20, Offset: 40}},
		{"negative page", "page=-1", PaginationParams{Page: 1, Limit: 15, Offset: 0}},
		{"limit too large", "limit=500", PaginationParams{Page: 1, Limit: 15, Offset: 0}},
		{"garbage", "page=abc&limit=xyz", PaginationParams{Page: 1, Limit: 15, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPaginationParams(contextWithQuery(tt.query)))
		})
	}
}

func TestGetPaginationParams_HugePage(t *testing.T) {
	params := GetPaginationParams(contextWithQuery("page=9223372036854775807&limit=20"))
	assert.Equal(t, math.MaxInt/20, params.Page)
	assert.GreaterOrEqual(t, params.Offset, 0)
	assert.Equal(t, (params.Page-1)*20, params.Offset)
}

func TestGetListParams(t *testing.T) {
	params := GetListParams(contextWithQuery("search=ada+love&filter=name_asc&page=2"))
	assert.Equal(t, "ada love", params.Search)
	assert.Equal(t, "name_asc", params.Filter)
	assert.Equal(t, 2, params.Page)
}

func TestNewPaginationResponse(t *testing.T) {
	assert.Equal(t, 3, NewPaginationResponse(1, 15, 31).TotalPages)
	assert.Equal(t, 2, NewPaginationResponse(1, 15, 30).TotalPages)
	assert.Equal(t, 0, NewPaginationResponse(1, 15, 0).TotalPages)
}
