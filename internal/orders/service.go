package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/config"
	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// PlaceOrderInput carries a customer's order request.
type PlaceOrderInput struct {
	CustomerID uuid.UUID
	ItemIDs    []int
}

// Service exposes order placement and revenue reporting.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderDTO, error)
	TotalRevenue(ctx context.Context, start, end *time.Time) (*RevenueReportDTO, error)
}

type service struct {
	repo            Repository
	tx              txRunner
	deductInventory bool
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner, cfg config.OrdersConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:            repo,
		tx:              tx,
		deductInventory: cfg.DeductInventory,
	}, nil
}

// PlaceOrder creates an order and its lines in one transaction. When
// inventory deduction is enabled each item's stock is decremented inside
// the same transaction, so an out-of-stock item fails the whole order.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderDTO, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if len(input.ItemIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item id is required")
	}

	if _, err := s.repo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load customer")
	}

	items, err := s.repo.FindItemsByIDs(ctx, input.ItemIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load order items")
	}
	if len(items) != len(input.ItemIDs) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "one or more grocery items not found")
	}

	orderValue := decimal.Zero
	for _, item := range items {
		orderValue = orderValue.Add(item.Price)
	}

	order := &models.Order{
		OrderValue: orderValue,
		CustomerID: input.CustomerID,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create order")
		}

		lines := make([]models.OrderItem, 0, len(input.ItemIDs))
		for _, itemID := range input.ItemIDs {
			lines = append(lines, models.OrderItem{OrderID: order.ID, ItemID: itemID})
		}
		if err := repo.CreateOrderItems(ctx, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create order items")
		}

		if s.deductInventory {
			for _, itemID := range input.ItemIDs {
				affected, err := repo.DecrementItemInventory(ctx, itemID, 1)
				if err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to deduct inventory")
				}
				if affected == 0 {
					return pkgerrors.New(pkgerrors.CodeInventory, "insufficient inventory").
						WithDetails(map[string]any{"itemId": itemID})
				}
			}
		}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order transaction failed")
	}

	return NewOrderDTO(order, len(input.ItemIDs)), nil
}

// TotalRevenue sums order values over the inclusive range. A missing start
// falls back to the Unix epoch, a missing end to now. The matching orders
// are aggregated in memory, which is fine at this order volume.
func (s *service) TotalRevenue(ctx context.Context, start, end *time.Time) (*RevenueReportDTO, error) {
	from := time.Unix(0, 0).UTC()
	if start != nil {
		from = *start
	}
	to := time.Now()
	if end != nil {
		to = *end
	}
	if from.After(to) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start date must not be after end date")
	}

	rows, err := s.repo.FindInRange(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load orders")
	}

	total := decimal.Zero
	individual := make([]OrderRevenueDTO, 0, len(rows))
	for _, row := range rows {
		total = total.Add(row.OrderValue)
		individual = append(individual, OrderRevenueDTO{
			OrderID:    row.ID,
			OrderValue: row.OrderValue,
		})
	}

	return &RevenueReportDTO{
		TotalRevenue:       total,
		IndividualRevenues: individual,
	}, nil
}
