package domain

import "math"

// Page size bounds applied by PaginationParams.Normalize.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginationParams holds caller-supplied paging input. Zero values mean unset.
type PaginationParams struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

// Window is the normalized form of PaginationParams, ready for LIMIT/OFFSET.
type Window struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Normalize corrects out-of-range input instead of rejecting it.
// Page below 1 becomes 1; PageSize below 1 becomes DefaultPageSize and
// PageSize above MaxPageSize is clamped to MaxPageSize. Page is capped so
// the offset never overflows; such a page is past the end of any table.
func (p PaginationParams) Normalize() Window {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}

	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	return Window{
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
		Page:     page,
		PageSize: pageSize,
	}
}

// PaginatedResponse is one page of items plus metadata derived from the
// total record count under the same filter.
type PaginatedResponse[T any] struct {
	Items        []T   `json:"items"`
	TotalRecords int64 `json:"total_records"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int64 `json:"total_pages"`
}

// NewPaginatedResponse builds the envelope for a page fetched with w.
// Items is never nil so it always encodes as a JSON array.
func NewPaginatedResponse[T any](items []T, totalRecords int64, w Window) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PaginatedResponse[T]{
		Items:        items,
		TotalRecords: totalRecords,
		Page:         w.Page,
		PageSize:     w.PageSize,
		TotalPages:   TotalPages(totalRecords, w.PageSize),
	}
}

// TotalPages returns ceil(total/pageSize), or 0 when either is not positive.
func TotalPages(total int64, pageSize int) int64 {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}
