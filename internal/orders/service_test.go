package orders

import (
	"context"
	"testing"
	"time"

	"github.com/calebfarias/grocerly-backend/pkg/config"
	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubOrderRepo struct {
	customers map[uuid.UUID]*models.User
	items     map[int]*models.GroceryItem
	rangeRows []models.Order

	nextOrderID    int
	createdOrders  []*models.Order
	createdLines   []models.OrderItem
	decrementCalls []int
	rangeStart     time.Time
	rangeEnd       time.Time
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		customers:   map[uuid.UUID]*models.User{},
		items:       map[int]*models.GroceryItem{},
		nextOrderID: 1,
	}
}

func (s *stubOrderRepo) seedCustomer() uuid.UUID {
	id := uuid.New()
	s.customers[id] = &models.User{ID: id, Username: "shopper", Email: "shopper@example.com"}
	return id
}

func (s *stubOrderRepo) seedItem(id int, price string, inventory int) {
	s.items[id] = &models.GroceryItem{
		ID:        id,
		Name:      "Item",
		Price:     decimal.RequireFromString(price),
		Inventory: inventory,
	}
}

func (s *stubOrderRepo) WithTx(_ *gorm.DB) Repository { return s }

func (s *stubOrderRepo) FindCustomerByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.customers[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderRepo) FindItemsByIDs(_ context.Context, ids []int) ([]models.GroceryItem, error) {
	var out []models.GroceryItem
	seen := map[int]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if item, ok := s.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) DecrementItemInventory(_ context.Context, id, quantity int) (int64, error) {
	s.decrementCalls = append(s.decrementCalls, id)
	item, ok := s.items[id]
	if !ok || item.Inventory < quantity {
		return 0, nil
	}
	item.Inventory -= quantity
	return 1, nil
}

func (s *stubOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = s.nextOrderID
	s.nextOrderID++
	order.CreatedAt = time.Now()
	s.createdOrders = append(s.createdOrders, order)
	return order, nil
}

func (s *stubOrderRepo) CreateOrderItems(_ context.Context, items []models.OrderItem) error {
	s.createdLines = append(s.createdLines, items...)
	return nil
}

func (s *stubOrderRepo) FindInRange(_ context.Context, start, end time.Time) ([]models.Order, error) {
	s.rangeStart = start
	s.rangeEnd = end
	return s.rangeRows, nil
}

type stubTxRunner struct {
	rolledBack bool
}

func (s *stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	if err := fn(nil); err != nil {
		s.rolledBack = true
		return err
	}
	return nil
}

func mustOrderService(t *testing.T, repo Repository, tx txRunner, cfg config.OrdersConfig) Service {
	t.Helper()
	svc, err := NewService(repo, tx, cfg)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	repo := newStubOrderRepo()
	repo.seedItem(1, "2.50", 5)
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: uuid.New(),
		ItemIDs:    []int{1},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlaceOrderMissingItem(t *testing.T) {
	repo := newStubOrderRepo()
	customerID := repo.seedCustomer()
	repo.seedItem(1, "2.50", 5)
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customerID,
		ItemIDs:    []int{1, 77},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for the missing item, got %v", err)
	}
	if len(repo.createdOrders) != 0 {
		t.Fatalf("no order should be written when an item is missing")
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	repo := newStubOrderRepo()
	customerID := repo.seedCustomer()
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{CustomerID: customerID})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderSumsPrices(t *testing.T) {
	repo := newStubOrderRepo()
	customerID := repo.seedCustomer()
	repo.seedItem(1, "2.50", 5)
	repo.seedItem(2, "1.25", 5)
	repo.seedItem(3, "0.99", 5)
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	dto, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customerID,
		ItemIDs:    []int{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if want := decimal.RequireFromString("4.74"); !dto.OrderValue.Equal(want) {
		t.Fatalf("expected order value %s, got %s", want, dto.OrderValue)
	}
	if dto.ItemCount != 3 {
		t.Fatalf("expected 3 items, got %d", dto.ItemCount)
	}
	if len(repo.createdLines) != 3 {
		t.Fatalf("expected 3 order lines, got %d", len(repo.createdLines))
	}
	for _, line := range repo.createdLines {
		if line.OrderID != dto.ID {
			t.Fatalf("order line bound to wrong order: %+v", line)
		}
	}
	if len(repo.decrementCalls) != 0 {
		t.Fatalf("inventory must stay untouched when deduction is off")
	}
}

func TestPlaceOrderDeductsInventoryWhenEnabled(t *testing.T) {
	repo := newStubOrderRepo()
	customerID := repo.seedCustomer()
	repo.seedItem(1, "2.50", 1)
	repo.seedItem(2, "1.25", 1)
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{DeductInventory: true})

	if _, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customerID,
		ItemIDs:    []int{1, 2},
	}); err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if repo.items[1].Inventory != 0 || repo.items[2].Inventory != 0 {
		t.Fatalf("inventory should be decremented inside the order")
	}
}

func TestPlaceOrderInsufficientInventoryRollsBack(t *testing.T) {
	repo := newStubOrderRepo()
	customerID := repo.seedCustomer()
	repo.seedItem(1, "2.50", 5)
	repo.seedItem(2, "1.25", 0)
	runner := &stubTxRunner{}
	svc := mustOrderService(t, repo, runner, config.OrdersConfig{DeductInventory: true})

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: customerID,
		ItemIDs:    []int{1, 2},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInventory {
		t.Fatalf("expected insufficient inventory, got %v", err)
	}
	if !runner.rolledBack {
		t.Fatalf("transaction should be rolled back")
	}
}

func TestTotalRevenueDefaultsRange(t *testing.T) {
	repo := newStubOrderRepo()
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	before := time.Now()
	report, err := svc.TotalRevenue(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("total revenue failed: %v", err)
	}
	if !repo.rangeStart.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("start should default to the epoch, got %s", repo.rangeStart)
	}
	if repo.rangeEnd.Before(before) {
		t.Fatalf("end should default to now, got %s", repo.rangeEnd)
	}
	if !report.TotalRevenue.IsZero() {
		t.Fatalf("expected zero revenue, got %s", report.TotalRevenue)
	}
	if report.IndividualRevenues == nil || len(report.IndividualRevenues) != 0 {
		t.Fatalf("expected empty individual revenues, got %+v", report.IndividualRevenues)
	}
}

func TestTotalRevenueSumsOrders(t *testing.T) {
	repo := newStubOrderRepo()
	repo.rangeRows = []models.Order{
		{ID: 1, OrderValue: decimal.RequireFromString("10.10")},
		{ID: 2, OrderValue: decimal.RequireFromString("4.90")},
	}
	svc := mustOrderService(t, repo, &stubTxRunner{}, config.OrdersConfig{})

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	report, err := svc.TotalRevenue(context.Background(), &start, &end)
	if err != nil {
		t.Fatalf("total revenue failed: %v", err)
	}
	if want := decimal.RequireFromString("15.00"); !report.TotalRevenue.Equal(want) {
		t.Fatalf("expected %s, got %s", want, report.TotalRevenue)
	}
	if len(report.IndividualRevenues) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report.IndividualRevenues))
	}
	if report.IndividualRevenues[0].OrderID != 1 {
		t.Fatalf("expected order 1 first, got %+v", report.IndividualRevenues[0])
	}
}

func TestTotalRevenueRejectsInvertedRange(t *testing.T) {
	svc := mustOrderService(t, newStubOrderRepo(), &stubTxRunner{}, config.OrdersConfig{})

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.TotalRevenue(context.Background(), &start, &end)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
