// internal/core/ports/list.go
package ports

import "github.com/acardosi/stockroom-be/internal/core/domain"

// PageParams holds common pagination and sorting parameters.
type PageParams struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Search    string `json:"search,omitempty"`
}

// Normalized returns a copy with sane pagination defaults applied.
func (p PageParams) Normalized() PageParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 || p.PageSize > 500 {
		p.PageSize = 50
	}
	return p
}

// Offset converts page/page-size into a row offset.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of list results.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a result page, deriving the page count.
func NewPage[T any](items []T, params PageParams, totalCount int64) Page[T] {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = int(totalCount) / params.PageSize
		if int(totalCount)%params.PageSize > 0 {
			totalPages++
		}
	}
	return Page[T]{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// UserListParams filters user listings.
type UserListParams struct {
	PageParams
	Role           domain.UserRole `json:"role,omitempty"`
	IncludeDeleted bool            `json:"include_deleted,omitempty"`
}

// ProductListParams filters product listings.
type ProductListParams struct {
	PageParams
	CategoryID     int64 `json:"category_id,omitempty"`
	SupplierID     int64 `json:"supplier_id,omitempty"`
	IncludeDeleted bool  `json:"include_deleted,omitempty"`
}

// LocationListParams filters location listings.
type LocationListParams struct {
	PageParams
	IncludeDeleted bool `json:"include_deleted,omitempty"`
}

// OrderListParams filters order listings.
type OrderListParams struct {
	PageParams
	Type           domain.OrderType   `json:"type,omitempty"`
	Status         domain.OrderStatus `json:"status,omitempty"`
	LocationID     int64              `json:"location_id,omitempty"`
	IncludeDeleted bool               `json:"include_deleted,omitempty"`
}
