package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Inventory adjustment actions.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// DefaultTopSellerCount bounds the top-sellers query when no size is given.
const DefaultTopSellerCount = 10

// ItemRepository defines the persistence surface the service needs.
type ItemRepository interface {
	FindByID(ctx context.Context, id int) (*models.GroceryItem, error)
	Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error)
	Update(ctx context.Context, id int, values map[string]any) error
	Delete(ctx context.Context, id int) error
	IncrementInventory(ctx context.Context, id, quantity int) (int64, error)
	DecrementInventory(ctx context.Context, id, quantity int) (int64, error)
	List(ctx context.Context, input ListInput, inStockOnly bool) ([]models.GroceryItem, int64, error)
	TopSellers(ctx context.Context, limit int) ([]TopSellerDTO, error)
}

// CreateItemInput holds the validated payload to create an item. Pointer
// fields distinguish absent from zero, so zero price and zero inventory
// are legal values.
type CreateItemInput struct {
	Name      string
	Price     *decimal.Decimal
	Inventory *int
}

// UpdateItemInput holds optional mutation values for an item.
type UpdateItemInput struct {
	Name      *string
	Price     *decimal.Decimal
	Inventory *int
}

// Service exposes catalog management operations.
type Service interface {
	List(ctx context.Context, input ListInput) (*pagination.Page[ItemDTO], error)
	ListInStock(ctx context.Context, input ListInput) (*pagination.Page[ItemDTO], error)
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	Update(ctx context.Context, id int, input UpdateItemInput) (*ItemDTO, error)
	Remove(ctx context.Context, id int) error
	AdjustInventory(ctx context.Context, id, quantity int, action string) (*ItemDTO, error)
	TopSellers(ctx context.Context, count int) ([]TopSellerDTO, error)
}

type service struct {
	repo ItemRepository
}

// NewService constructs a catalog service instance.
func NewService(repo ItemRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) (*pagination.Page[ItemDTO], error) {
	return s.list(ctx, input, false)
}

// ListInStock is the customer view: only items with stock remaining.
func (s *service) ListInStock(ctx context.Context, input ListInput) (*pagination.Page[ItemDTO], error) {
	return s.list(ctx, input, true)
}

func (s *service) list(ctx context.Context, input ListInput, inStockOnly bool) (*pagination.Page[ItemDTO], error) {
	if input.Filters.SortBy != "" && !validSortBy(input.Filters.SortBy) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported sort column").
			WithDetails(map[string]any{"sortBy": input.Filters.SortBy})
	}

	items, total, err := s.repo.List(ctx, input, inStockOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list grocery items")
	}

	page, limit := input.Pagination.Normalize()
	result := pagination.ToPage(newItemDTOs(items), total, page, limit)
	return &result, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if input.Price == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
	}
	if input.Inventory == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item inventory is required")
	}
	if *input.Inventory < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item inventory cannot be negative")
	}

	item := &models.GroceryItem{
		Name:      name,
		Price:     *input.Price,
		Inventory: *input.Inventory,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create grocery item")
	}
	return NewItemDTO(created), nil
}

func (s *service) Update(ctx context.Context, id int, input UpdateItemInput) (*ItemDTO, error) {
	if _, err := s.loadItem(ctx, id); err != nil {
		return nil, err
	}

	values := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name cannot be empty")
		}
		values["name"] = name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
		}
		values["price"] = *input.Price
	}
	if input.Inventory != nil {
		if *input.Inventory < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item inventory cannot be negative")
		}
		values["inventory"] = *input.Inventory
	}

	if len(values) > 0 {
		if err := s.repo.Update(ctx, id, values); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update grocery item")
		}
	}

	return s.loadItem(ctx, id)
}

func (s *service) Remove(ctx context.Context, id int) error {
	if _, err := s.loadItem(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete grocery item")
	}
	return nil
}

func (s *service) AdjustInventory(ctx context.Context, id, quantity int, action string) (*ItemDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.loadItem(ctx, id); err != nil {
		return nil, err
	}

	switch action {
	case ActionIncrease:
		if _, err := s.repo.IncrementInventory(ctx, id, quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increase inventory")
		}
	case ActionDecrease:
		affected, err := s.repo.DecrementInventory(ctx, id, quantity)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrease inventory")
		}
		if affected == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeInventory, "insufficient inventory").
				WithDetails(map[string]any{"itemId": id, "quantity": quantity})
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "action must be increase or decrease").
			WithDetails(map[string]any{"action": action})
	}

	return s.loadItem(ctx, id)
}

func (s *service) TopSellers(ctx context.Context, count int) ([]TopSellerDTO, error) {
	if count <= 0 {
		count = DefaultTopSellerCount
	}
	rows, err := s.repo.TopSellers(ctx, count)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load top sellers")
	}
	if rows == nil {
		rows = []TopSellerDTO{}
	}
	return rows, nil
}

func (s *service) loadItem(ctx context.Context, id int) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "grocery item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load grocery item")
	}
	return NewItemDTO(item), nil
}
