package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ListParams holds the query parameters shared by every index endpoint
type ListParams struct {
	PaginationParams
	Search string
	Filter string
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	// Keep the offset representable.
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// GetListParams reads pagination plus the search and filter parameters
func GetListParams(c *gin.Context) ListParams {
	return ListParams{
		PaginationParams: GetPaginationParams(c),
		Search:           c.Query("search"),
		Filter:           c.Query("filter"),
	}
}

// NewPaginationResponse builds pagination metadata for a page of total items
func NewPaginationResponse(page, limit int, total int64) PaginationResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = int(total) / limit
		if int(total)%limit > 0 {
			totalPages++
		}
	}
	return PaginationResponse{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
