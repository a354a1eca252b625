package pagination

import "math"

// DefaultLimit is the page size used when a caller does not provide one.
const DefaultLimit = 10

// Params holds page/size pagination inputs from controllers or services.
type Params struct {
	Page int
	Size int
}

// Page is the standard envelope for paginated collections.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
}

// LimitOffset converts page/size inputs into query limit and offset.
// Size falls through to DefaultLimit when not positive; a negative page
// is treated as the first page.
func LimitOffset(page, size int) (limit, offset int) {
	limit = size
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 0 {
		page = 0
	}
	return limit, page * limit
}

// Normalize returns the effective page and limit for the given params.
func (p Params) Normalize() (page, limit int) {
	limit, _ = LimitOffset(p.Page, p.Size)
	page = p.Page
	if page < 0 {
		page = 0
	}
	return page, limit
}

// ToPage wraps a query result in the standard page envelope.
func ToPage[T any](items []T, totalItems int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return Page[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
