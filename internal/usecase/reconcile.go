package usecase

import (
	"context"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// ReconcileUseCase is the single entry point for order status changes. Both
// payment and delivery events resolve through the shared transition table and
// are committed atomically by the repository.
type ReconcileUseCase struct {
	orders repository.OrderRepository
}

// NewReconcileUseCase constructs ReconcileUseCase.
func NewReconcileUseCase(orders repository.OrderRepository) *ReconcileUseCase {
	return &ReconcileUseCase{orders: orders}
}

// ApplyPayment validates and applies a payment status change to an order.
func (u *ReconcileUseCase) ApplyPayment(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error) {
	if !model.ValidPaymentStatus(upd.Status) {
		return nil, domainErrors.ErrInvalidPaymentStatus
	}
	if upd.RefundAmountCents != nil && *upd.RefundAmountCents < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.orders.ApplyPaymentEvent(ctx, number, upd)
}

// ApplyDelivery validates and applies a delivery status change to an order.
func (u *ReconcileUseCase) ApplyDelivery(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error) {
	if !model.ValidDeliveryStatus(upd.Status) {
		return nil, domainErrors.ErrInvalidDeliveryStatus
	}
	return u.orders.ApplyDeliveryEvent(ctx, number, upd)
}
