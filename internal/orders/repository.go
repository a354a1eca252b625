package orders

import (
	"context"
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the persistence surface the order service needs. It spans
// orders, order lines, and the customer/item rows an order references so
// the whole write happens against one handle.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindItemsByIDs(ctx context.Context, ids []int) ([]models.GroceryItem, error)
	DecrementItemInventory(ctx context.Context, id, quantity int) (int64, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindInRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindItemsByIDs(ctx context.Context, ids []int) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DecrementItemInventory(ctx context.Context, id, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.GroceryItem{}).
		Where("id = ? AND inventory >= ?", id, quantity).
		Update("inventory", gorm.Expr("inventory - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindInRange loads the orders created inside the inclusive range.
func (r *repository) FindInRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
