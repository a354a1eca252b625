package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func mustCreateTestItem(t *testing.T, tx *gorm.DB, name string, price string, inventory int) *models.GroceryItem {
	t.Helper()
	item := &models.GroceryItem{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Inventory: inventory,
	}
	if err := tx.Create(item).Error; err != nil {
		t.Fatalf("create grocery item: %v", err)
	}
	return item
}

func mustCreateTestCustomer(t *testing.T, tx *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: fmt.Sprintf("gl_test_%s", uuid.NewString()),
		Email:    fmt.Sprintf("gl_test_%s@example.com", uuid.NewString()),
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTestOrder(t *testing.T, tx *gorm.DB, customerID uuid.UUID, itemIDs ...int) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderValue: decimal.Zero,
		CustomerID: customerID,
	}
	if err := tx.Create(order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	for _, itemID := range itemIDs {
		line := &models.OrderItem{OrderID: order.ID, ItemID: itemID}
		if err := tx.Create(line).Error; err != nil {
			t.Fatalf("create order item: %v", err)
		}
	}
	return order
}

func mustBackdateItem(t *testing.T, tx *gorm.DB, id int, createdAt time.Time) {
	t.Helper()
	if err := tx.Model(&models.GroceryItem{}).
		Where("id = ?", id).
		Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate item: %v", err)
	}
}
