package repository

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Deactivate(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	ListLowStock(ctx context.Context, limit int) ([]model.Product, error)
}
