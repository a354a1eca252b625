package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroceryItem is a sellable catalog entry.
type GroceryItem struct {
	ID        int             `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;type:text;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Inventory int             `gorm:"column:inventory;not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (GroceryItem) TableName() string {
	return "grocery_items"
}
