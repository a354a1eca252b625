package catalog

import (
	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ItemDTO is the catalog payload returned to clients.
type ItemDTO struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Inventory int             `json:"inventory"`
}

// TopSellerDTO is an item row annotated with its order-line count.
type TopSellerDTO struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	OrderCount int64           `json:"orderCount" gorm:"column:order_count"`
}

// NewItemDTO maps the persisted model into the client payload.
func NewItemDTO(item *models.GroceryItem) *ItemDTO {
	return &ItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Inventory: item.Inventory,
	}
}

func newItemDTOs(items []models.GroceryItem) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *NewItemDTO(&items[i]))
	}
	return dtos
}
