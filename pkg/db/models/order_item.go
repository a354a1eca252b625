package models

import "time"

// OrderItem joins an order to one grocery item line.
type OrderItem struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int       `gorm:"column:order_id;not null;index"`
	ItemID    int       `gorm:"column:item_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
