package orders

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("GROCERLY_DB_DSN")
	if dsn == "" {
		t.Skip("GROCERLY_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
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

func mustCreateTestItem(t *testing.T, tx *gorm.DB, price string, inventory int) *models.GroceryItem {
	t.Helper()
	item := &models.GroceryItem{
		Name:      fmt.Sprintf("Test Item %s", uuid.NewString()),
		Price:     decimal.RequireFromString(price),
		Inventory: inventory,
	}
	if err := tx.Create(item).Error; err != nil {
		t.Fatalf("create grocery item: %v", err)
	}
	return item
}

func mustBackdateOrder(t *testing.T, tx *gorm.DB, id int, createdAt time.Time) {
	t.Helper()
	if err := tx.Model(&models.Order{}).
		Where("id = ?", id).
		Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}
}
