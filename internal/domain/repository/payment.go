package repository

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// PaymentRepository provides access to settlement records.
type PaymentRepository interface {
	GetByOrderNumber(ctx context.Context, number string) (*model.Payment, error)
	ListPending(ctx context.Context, limit int) ([]model.Payment, error)
}
