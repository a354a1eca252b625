package users

import (
	"context"
	"fmt"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByGoogleID retrieves the user holding the external identity.
func (r *Repository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// List returns one page of users plus the unpaginated total.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	filters := input.Filters
	switch {
	case filters.ID != nil:
		query = query.Where("id = ?", *filters.ID)
	default:
		if filters.From != nil {
			query = query.Where("created_at > ?", dayStart(*filters.From))
		}
		if filters.To != nil {
			query = query.Where("created_at < ?", dayEnd(*filters.To))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if validSortBy(filters.SortBy) {
		query = query.Order(fmt.Sprintf("%s %s", filters.SortBy, normalizeSortDir(filters.SortDir)))
	}

	limit, offset := pagination.LimitOffset(input.Pagination.Page, input.Pagination.Size)

	var rows []models.User
	if err := query.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
