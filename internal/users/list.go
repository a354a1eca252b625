package users

import (
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/pagination"
	"github.com/google/uuid"
)

// Sort columns accepted by the directory listing.
const (
	SortByCreatedAt = "created_at"
	SortByUsername  = "username"

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// ListFilters describe the supported filter knobs for user listings.
type ListFilters struct {
	// ID short-circuits the range filter when present.
	ID   *uuid.UUID
	From *time.Time
	To   *time.Time

	SortBy  string
	SortDir string
}

// ListInput captures the inputs needed to paginate and filter users.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

func validSortBy(column string) bool {
	return column == SortByCreatedAt || column == SortByUsername
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
