package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns active products, newest first.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// Get fetches one product. Inactive products are hidden unless the caller is
// back-office staff.
func (u *CatalogUseCase) Get(ctx context.Context, id int64, includeInactive bool) (*model.Product, error) {
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive && !includeInactive {
		return nil, domainErrors.ErrNotFound
	}
	return p, nil
}

// Create registers a new catalog entry.
func (u *CatalogUseCase) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Name = strings.TrimSpace(p.Name)
	if p.SKU == "" || p.Name == "" || !ValidateAmountCents(p.PriceCents) || p.StockQuantity < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if p.LowStockThreshold < 0 {
		p.LowStockThreshold = 0
	}
	return u.products.Create(ctx, p)
}

// Update persists catalog edits.
func (u *CatalogUseCase) Update(ctx context.Context, p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || !ValidateAmountCents(p.PriceCents) || p.StockQuantity < 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.products.Update(ctx, p)
}

// Deactivate soft deletes a product; order history keeps referencing it.
func (u *CatalogUseCase) Deactivate(ctx context.Context, id int64) error {
	return u.products.Deactivate(ctx, id)
}
