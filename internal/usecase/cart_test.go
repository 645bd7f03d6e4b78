package usecase_test

import (
	"context"
	"errors"
	. "github.com/eletrofluxo/storefront/internal/usecase"
	"testing"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	testhelpers "github.com/eletrofluxo/storefront/internal/test"
)

func newCartFixture() (*CartUseCase, *testhelpers.CartStoreStub, *testhelpers.ProductRepositoryStub) {
	store := testhelpers.NewCartStoreStub()
	products := testhelpers.NewProductRepositoryStub()
	return NewCartUseCase(store, products), store, products
}

func TestCartAddItem(t *testing.T) {
	uc, store, products := newCartFixture()
	p := products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor 20A", PriceCents: 2500, StockQuantity: 10, IsActive: true})

	if err := uc.AddItem(context.Background(), 7, p.ID, 3); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if store.Data[7][p.ID] != 3 {
		t.Fatalf("expected quantity 3 stored, got %d", store.Data[7][p.ID])
	}

	// upsert replaces the quantity
	if err := uc.AddItem(context.Background(), 7, p.ID, 5); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if store.Data[7][p.ID] != 5 {
		t.Fatalf("expected quantity 5 after upsert, got %d", store.Data[7][p.ID])
	}
}

func TestCartAddItemValidation(t *testing.T) {
	uc, _, products := newCartFixture()
	active := products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 2, IsActive: true})
	inactive := products.Seed(model.Product{SKU: "EL-002", Name: "Cabo", PriceCents: 990, StockQuantity: 50, IsActive: false})

	if err := uc.AddItem(context.Background(), 7, active.ID, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 7, inactive.ID, 1); !errors.Is(err, domainErrors.ErrProductInactive) {
		t.Fatalf("expected inactive product error, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 7, active.ID, 3); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 7, 404, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCartViewEnrichesAndSkipsStale(t *testing.T) {
	uc, store, products := newCartFixture()
	p1 := products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 10, IsActive: true})
	p2 := products.Seed(model.Product{SKU: "EL-002", Name: "Cabo", PriceCents: 990, StockQuantity: 10, IsActive: false})

	store.Data[7] = map[int64]int{p1.ID: 2, p2.ID: 1, 404: 1}

	view, err := uc.View(context.Background(), 7)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected only the active existing product, got %d lines", len(view.Lines))
	}
	if view.Lines[0].SubtotalCents != 5000 || view.TotalCents != 5000 {
		t.Fatalf("unexpected totals: %+v", view)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	uc, store, products := newCartFixture()
	p := products.Seed(model.Product{SKU: "EL-001", Name: "Disjuntor", PriceCents: 2500, StockQuantity: 10, IsActive: true})
	store.Data[7] = map[int64]int{p.ID: 2}

	if err := uc.RemoveItem(context.Background(), 7, p.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(store.Data[7]) != 0 {
		t.Fatalf("expected empty cart, got %+v", store.Data[7])
	}

	store.Data[7] = map[int64]int{p.ID: 2}
	if err := uc.Clear(context.Background(), 7); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, ok := store.Data[7]; ok {
		t.Fatal("expected cart removed")
	}
}
