package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order captures a customer purchase. OrderValue is the sum of the item
// prices at creation time and never changes afterwards.
type Order struct {
	ID         int             `gorm:"column:id;primaryKey;autoIncrement"`
	OrderValue decimal.Decimal `gorm:"column:order_value;type:numeric(10,2);not null"`
	CustomerID uuid.UUID       `gorm:"column:customer_id;type:uuid;not null"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
