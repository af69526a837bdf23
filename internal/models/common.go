package models

import "errors"

// ErrInvalidInput marks errors caused by user-supplied values.
var ErrInvalidInput = errors.New("invalid input")

// Pagination holds pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// DefaultPagination returns default pagination settings.
func DefaultPagination() Pagination {
	return Pagination{
		Page:     1,
		PageSize: defaultPageSize,
	}
}

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// Normalize clamps Page to at least 1 and PageSize to 1..100, substituting
// the default size when none was given. Offset, Limit and TotalPages all
// work on the normalized values so paging never skips rows.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = defaultPageSize
	case p.PageSize > maxPageSize:
		p.PageSize = maxPageSize
	}
	return p
}

// Offset calculates the SQL offset for the current page.
func (p Pagination) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size as limit.
func (p Pagination) Limit() int {
	return p.Normalize().PageSize
}

// TotalPages calculates the total number of pages.
func (p Pagination) TotalPages(total int) int {
	p = p.Normalize()
	pages := total / p.PageSize
	if total%p.PageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}
