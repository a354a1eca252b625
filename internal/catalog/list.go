package catalog

import (
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/pagination"
)

// Sort columns accepted by the list endpoints.
const (
	SortByCreatedAt = "created_at"
	SortByInventory = "inventory"

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// ListFilters describe the supported filter knobs for item listings.
type ListFilters struct {
	// ID short-circuits the range filter when present.
	ID   *int
	From *time.Time
	To   *time.Time

	SortBy  string
	SortDir string
}

// ListInput captures the inputs needed to paginate and filter items.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

func validSortBy(column string) bool {
	return column == SortByCreatedAt || column == SortByInventory
}

func normalizeSortDir(dir string) string {
	if dir == SortAsc || dir == SortDesc {
		return dir
	}
	return SortDesc
}

// dayStart pins a date to 00:00:00 in its location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayEnd pins a date to 23:59:59 in its location. Range comparisons are
// strict, so the boundary seconds themselves stay excluded.
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
