package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/handlers"
	testhelpers "github.com/eletrofluxo/storefront/internal/test"
)

func newEngine(parse func(string) (int64, model.Role, error)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: parse},
	}
	return Setup(facade, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine(nil)

	body, _ := json.Marshal(map[string]string{"email": "cliente@example.com", "name": "Maria", "password": "segredo"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	engine := newEngine(nil)

	for _, path := range []string{"/api/cart", "/api/orders"} {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token, got %d", path, resp.Code)
		}
	}
}

func TestSetupAuthenticatedRoutes(t *testing.T) {
	engine := newEngine(func(string) (int64, model.Role, error) { return 7, model.RoleCustomer, nil })

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}
}

func TestSetupAdminRoutesRejectCustomers(t *testing.T) {
	engine := newEngine(func(string) (int64, model.Role, error) { return 7, model.RoleCustomer, nil })

	req := httptest.NewRequest(http.MethodGet, "/api/admin/notifications", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer on admin route, got %d", resp.Code)
	}
}

func TestSetupAdminRoutes(t *testing.T) {
	engine := newEngine(func(string) (int64, model.Role, error) { return 1, model.RoleAdmin, nil })

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin orders, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"status": "paid"})
	req = httptest.NewRequest(http.MethodPut, "/api/admin/payments/EF-0000000001", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for payment update, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
