package usecase_test

import (
	"context"
	"errors"
	. "github.com/eletrofluxo/storefront/internal/usecase"
	"strings"
	"testing"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	testhelpers "github.com/eletrofluxo/storefront/internal/test"
)

type orderFixture struct {
	uc       *OrderUseCase
	orders   *testhelpers.OrderRepositoryStub
	products *testhelpers.ProductRepositoryStub
	cart     *testhelpers.CartStoreStub
	gateway  testhelpers.CheckoutGatewayStub
}

func newOrderFixture(gw testhelpers.CheckoutGatewayStub) *orderFixture {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	cart := testhelpers.NewCartStoreStub()
	return &orderFixture{
		uc:       NewOrderUseCase(orders, products, cart, gw),
		orders:   orders,
		products: products,
		cart:     cart,
		gateway:  gw,
	}
}

func TestNewOrderNumberFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		if !strings.HasPrefix(number, "EF-") || len(number) != 13 {
			t.Fatalf("unexpected order number %q", number)
		}
		if seen[number] {
			t.Fatalf("duplicate order number %q", number)
		}
		seen[number] = true
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{})
	p1 := fx.products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor 20A", PriceCents: 2500, StockQuantity: 10, IsActive: true})
	p2 := fx.products.Seed(model.Product{SKU: "HD-010", Name: "Registro 1/2", PriceCents: 1500, StockQuantity: 4, IsActive: true})
	fx.cart.Data[7] = map[int64]int{p1.ID: 2, p2.ID: 1}

	order, paymentURL, err := fx.uc.Checkout(context.Background(), 7, "cliente@example.com", " entregar à tarde ")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != model.OrderStatusPending || order.PaymentStatus != model.PaymentStatusPending {
		t.Fatalf("expected pending order, got %q/%q", order.Status, order.PaymentStatus)
	}
	if order.TotalCents != 6500 {
		t.Fatalf("expected total 6500, got %d", order.TotalCents)
	}
	if order.Notes != "entregar à tarde" {
		t.Fatalf("expected trimmed notes, got %q", order.Notes)
	}
	if paymentURL == "" {
		t.Fatal("expected payment URL")
	}

	items := fx.orders.Items[order.ID]
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductName != "Disjuntor 20A" || items[0].UnitPriceCents != 2500 {
		t.Fatalf("expected captured product data, got %+v", items[0])
	}

	payment := fx.orders.Payments[order.Number]
	if payment == nil || payment.Status != model.PaymentStatusPending {
		t.Fatalf("expected pending payment row, got %+v", payment)
	}
	if payment.GatewayReference != "pref-"+order.Number {
		t.Fatalf("expected gateway reference, got %q", payment.GatewayReference)
	}

	if _, ok := fx.cart.Data[7]; ok {
		t.Fatal("expected cart cleared after checkout")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{})
	if _, _, err := fx.uc.Checkout(context.Background(), 7, "a@b.co", ""); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{})
	p := fx.products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 1, IsActive: true})
	fx.cart.Data[7] = map[int64]int{p.ID: 2}

	if _, _, err := fx.uc.Checkout(context.Background(), 7, "a@b.co", ""); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if _, ok := fx.cart.Data[7]; !ok {
		t.Fatal("expected cart kept on failed checkout")
	}
}

func TestCheckoutInactiveProduct(t *testing.T) {
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{})
	p := fx.products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 10, IsActive: false})
	fx.cart.Data[7] = map[int64]int{p.ID: 1}

	if _, _, err := fx.uc.Checkout(context.Background(), 7, "a@b.co", ""); !errors.Is(err, domainErrors.ErrProductInactive) {
		t.Fatalf("expected inactive product error, got %v", err)
	}
}

func TestCheckoutGatewayFailureAborts(t *testing.T) {
	gwErr := errors.New("gateway down")
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{Err: gwErr})
	p := fx.products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 10, IsActive: true})
	fx.cart.Data[7] = map[int64]int{p.ID: 1}

	if _, _, err := fx.uc.Checkout(context.Background(), 7, "a@b.co", ""); !errors.Is(err, gwErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if len(fx.orders.Orders) != 0 {
		t.Fatal("expected no order created when the gateway fails")
	}
	if _, ok := fx.cart.Data[7]; !ok {
		t.Fatal("expected cart kept when the gateway fails")
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	fx := newOrderFixture(testhelpers.CheckoutGatewayStub{})
	created, err := fx.orders.CreateWithItems(context.Background(),
		&model.Order{UserID: 7, Number: "EF-0000000001", Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending},
		[]model.OrderItem{{ProductID: 1, ProductName: "Disjuntor", Quantity: 1, UnitPriceCents: 2500}},
		&model.Payment{Status: model.PaymentStatusPending})
	if err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	if _, _, err := fx.uc.Get(context.Background(), created.Number, 8, false); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign order to read as not found, got %v", err)
	}

	order, items, err := fx.uc.Get(context.Background(), created.Number, 7, false)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if order.Number != created.Number || len(items) != 1 {
		t.Fatalf("unexpected order read: %+v items=%d", order, len(items))
	}

	if _, _, err := fx.uc.Get(context.Background(), created.Number, 999, true); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}
