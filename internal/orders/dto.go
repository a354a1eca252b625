package orders

import (
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the API view of a placed order.
type OrderDTO struct {
	ID         int             `json:"id"`
	OrderValue decimal.Decimal `json:"order_value"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ItemCount  int             `json:"item_count"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewOrderDTO maps an order row to its API view.
func NewOrderDTO(order *models.Order, itemCount int) *OrderDTO {
	return &OrderDTO{
		ID:         order.ID,
		OrderValue: order.OrderValue,
		CustomerID: order.CustomerID,
		ItemCount:  itemCount,
		CreatedAt:  order.CreatedAt,
	}
}

// OrderRevenueDTO is one order's contribution to a revenue report.
type OrderRevenueDTO struct {
	OrderID    int             `json:"order_id"`
	OrderValue decimal.Decimal `json:"order_value"`
}

// RevenueReportDTO aggregates order values over a date range.
type RevenueReportDTO struct {
	TotalRevenue       decimal.Decimal   `json:"total_revenue"`
	IndividualRevenues []OrderRevenueDTO `json:"individual_revenues"`
}
