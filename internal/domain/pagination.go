package domain

import "math"

const (
	DefaultPage        = 1
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultRecentLimit = 20
	MaxRecentLimit     = 50
)

type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination clamps page to at least 1 and pageSize to [1, maxPageSize].
// Zero values fall back to the defaults. Pages beyond what an offset can
// address are capped; they are empty either way.
func NewPagination(page, pageSize, maxPageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	pageSize = clamp(pageSize, 1, maxPageSize)

	// Keep Offset within int range for any page number a client sends.
	return Pagination{
		Page:     min(page, math.MaxInt/pageSize),
		PageSize: pageSize,
	}
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ClampRecentLimit applies the default and cap of the recently added feed.
func ClampRecentLimit(limit int) int {
	if limit == 0 {
		return DefaultRecentLimit
	}

	return clamp(limit, 1, MaxRecentLimit)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

type Metadata struct {
	Page  int
	Limit int
	Total int64
	Pages int64
}

func NewMetadata(total int64, pagination Pagination) *Metadata {
	limit := int64(pagination.PageSize)

	return &Metadata{
		Page:  pagination.Page,
		Limit: pagination.PageSize,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}
