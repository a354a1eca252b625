package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/calebfarias/grocerly-backend/internal/catalog"
	"github.com/calebfarias/grocerly-backend/internal/orders"
	"github.com/calebfarias/grocerly-backend/internal/users"
	pkgauth "github.com/calebfarias/grocerly-backend/pkg/auth"
	"github.com/calebfarias/grocerly-backend/pkg/config"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
	"github.com/calebfarias/grocerly-backend/pkg/metrics"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
)

type routerCatalogStub struct{}

func (routerCatalogStub) List(context.Context, catalog.ListInput) (*pagination.Page[catalog.ItemDTO], error) {
	page := pagination.ToPage([]catalog.ItemDTO{}, 0, 0, pagination.DefaultLimit)
	return &page, nil
}

func (routerCatalogStub) ListInStock(context.Context, catalog.ListInput) (*pagination.Page[catalog.ItemDTO], error) {
	page := pagination.ToPage([]catalog.ItemDTO{}, 0, 0, pagination.DefaultLimit)
	return &page, nil
}

func (routerCatalogStub) Create(context.Context, catalog.CreateItemInput) (*catalog.ItemDTO, error) {
	return &catalog.ItemDTO{ID: 1}, nil
}

func (routerCatalogStub) Update(_ context.Context, id int, _ catalog.UpdateItemInput) (*catalog.ItemDTO, error) {
	return &catalog.ItemDTO{ID: id}, nil
}

func (routerCatalogStub) Remove(context.Context, int) error { return nil }

func (routerCatalogStub) AdjustInventory(_ context.Context, id, _ int, _ string) (*catalog.ItemDTO, error) {
	return &catalog.ItemDTO{ID: id}, nil
}

func (routerCatalogStub) TopSellers(context.Context, int) ([]catalog.TopSellerDTO, error) {
	return []catalog.TopSellerDTO{}, nil
}

type routerUserStub struct{}

func (routerUserStub) List(context.Context, users.ListInput) (*pagination.Page[users.UserDTO], error) {
	page := pagination.ToPage([]users.UserDTO{}, 0, 0, pagination.DefaultLimit)
	return &page, nil
}

func (routerUserStub) Profile(_ context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Username: "shopper", Email: "shopper@example.com"}, nil
}

func (routerUserStub) FindOrCreateByGoogleID(context.Context, string, string, string) (*users.UserDTO, error) {
	return &users.UserDTO{ID: uuid.New()}, nil
}

type routerMembershipStub struct{}

func (routerMembershipStub) GrantAdmin(context.Context, uuid.UUID) error { return nil }

type routerOrderStub struct{}

func (routerOrderStub) PlaceOrder(_ context.Context, input orders.PlaceOrderInput) (*orders.OrderDTO, error) {
	return &orders.OrderDTO{ID: 1, CustomerID: input.CustomerID, ItemCount: len(input.ItemIDs)}, nil
}

func (routerOrderStub) TotalRevenue(context.Context, *time.Time, *time.Time) (*orders.RevenueReportDTO, error) {
	return &orders.RevenueReportDTO{}, nil
}

func newTestRouter(t *testing.T) (http.Handler, config.JWTConfig) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.Issuer = "grocerly-test"
	cfg.JWT.ExpirationMinutes = 15
	cfg.Orders.IdempotencyTTL = time.Hour

	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	registry := prometheus.NewRegistry()

	router := NewRouter(Dependencies{
		Config:      cfg,
		Logger:      logg,
		Metrics:     metrics.NewHTTPMetrics(registry),
		Registry:    registry,
		Catalog:     routerCatalogStub{},
		Users:       routerUserStub{},
		Memberships: routerMembershipStub{},
		Orders:      routerOrderStub{},
	})
	return router, cfg.JWT
}

func mintToken(t *testing.T, cfg config.JWTConfig, role string) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health/live, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}

func TestRouterAdminGroupRequiresAdminRole(t *testing.T) {
	router, jwtCfg := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/grocery/items", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/grocery/items", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, pkgauth.RoleCustomer))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a customer token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/grocery/items", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, pkgauth.RoleAdmin))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an admin token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterCustomerGroup(t *testing.T) {
	router, jwtCfg := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/grocery-list", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/grocery-list", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, pkgauth.RoleCustomer))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a customer token, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/top-sellers/5", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, pkgauth.RoleCustomer))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from top sellers, got %d: %s", rec.Code, rec.Body.String())
	}
}
