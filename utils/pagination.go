package utils

import "github.com/gofiber/fiber/v2"

// Pagination is the metadata block returned by every list endpoint.
type Pagination struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// ParsePagination reads limit/offset query parameters with the shared
// defaults: limit 20 clamped to [1,100], offset 0 floored at 0.
func ParsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// NewPagination computes the metadata for one page. hasMore is true iff rows
// remain beyond this page.
func NewPagination(limit, offset int, total int64) Pagination {
	return Pagination{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}
}
