package catalog

import (
	"context"
	"fmt"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository wires together grocery item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads one item.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.GroceryItem, error) {
	var item models.GroceryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create persists a new item.
func (r *Repository) Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the provided column values to the item row.
func (r *Repository) Update(ctx context.Context, id int, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.GroceryItem{}).
		Where("id = ?", id).
		Updates(values).Error
}

// Delete removes the item row.
func (r *Repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&models.GroceryItem{}, "id = ?", id).Error
}

// IncrementInventory adds quantity to the item's stock.
func (r *Repository) IncrementInventory(ctx context.Context, id int, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.GroceryItem{}).
		Where("id = ?", id).
		Update("inventory", gorm.Expr("inventory + ?", quantity))
	return res.RowsAffected, res.Error
}

// DecrementInventory subtracts quantity from the item's stock. The guard
// keeps concurrent decrements from racing past zero; zero rows affected on
// an existing item means the stock was short.
func (r *Repository) DecrementInventory(ctx context.Context, id int, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.GroceryItem{}).
		Where("id = ? AND inventory >= ?", id, quantity).
		Update("inventory", gorm.Expr("inventory - ?", quantity))
	return res.RowsAffected, res.Error
}

// List returns one page of items plus the unpaginated total.
func (r *Repository) List(ctx context.Context, input ListInput, inStockOnly bool) ([]models.GroceryItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.GroceryItem{})

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

	if inStockOnly {
		query = query.Where("inventory > ?", 0)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if validSortBy(filters.SortBy) {
		query = query.Order(fmt.Sprintf("%s %s", filters.SortBy, normalizeSortDir(filters.SortDir)))
	}

	limit, offset := pagination.LimitOffset(input.Pagination.Page, input.Pagination.Size)

	var items []models.GroceryItem
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

const topSellersQuery = `
SELECT gi.id,
       gi.name,
       gi.price,
       COUNT(oi.item_id) AS order_count
FROM grocery_items gi
LEFT JOIN order_items oi ON oi.item_id = gi.id
GROUP BY gi.id, gi.name, gi.price
HAVING COUNT(oi.item_id) > 0
ORDER BY order_count DESC
LIMIT ?
`

// TopSellers returns the items with the most order lines, busiest first.
func (r *Repository) TopSellers(ctx context.Context, limit int) ([]TopSellerDTO, error) {
	var rows []TopSellerDTO
	if err := r.db.WithContext(ctx).Raw(topSellersQuery, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
