package usecase

import (
	"context"
	"errors"
	"sort"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// CartStore is the ephemeral per-user cart storage contract.
type CartStore interface {
	Get(ctx context.Context, userID int64) ([]model.CartItem, error)
	SetItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

// CartUseCase manages cart content and its catalog enrichment.
type CartUseCase struct {
	store    CartStore
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(store CartStore, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{store: store, products: products}
}

// View returns the cart enriched with current catalog data. Items whose
// product meanwhile vanished or was deactivated are skipped, not failed on.
func (u *CartUseCase) View(ctx context.Context, userID int64) (*model.CartView, error) {
	items, err := u.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	view := &model.CartView{}
	for _, item := range items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !product.IsActive {
			continue
		}
		subtotal := product.PriceCents * int64(item.Quantity)
		view.Lines = append(view.Lines, model.CartLine{Product: *product, Quantity: item.Quantity, SubtotalCents: subtotal})
		view.TotalCents += subtotal
	}
	return view, nil
}

// AddItem validates the product and upserts its quantity in the cart.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	if !ValidateQuantity(quantity) {
		return domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return domainErrors.ErrProductInactive
	}
	if product.StockQuantity < quantity {
		return domainErrors.ErrInsufficientStock
	}

	return u.store.SetItem(ctx, userID, productID, quantity)
}

// RemoveItem drops one product from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) error {
	return u.store.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.store.Clear(ctx, userID)
}
