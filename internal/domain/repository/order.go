package repository

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. The two
// Apply* methods are the only writers of order status: each runs inside a
// single transaction, locks the order row and derives the next status through
// the shared transition table.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem, payment *model.Payment) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	ListByPaymentStatus(ctx context.Context, status model.PaymentStatus, limit int) ([]model.Order, error)
	ListWithNotes(ctx context.Context, limit int) ([]model.Order, error)
	ApplyPaymentEvent(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error)
	ApplyDeliveryEvent(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error)
}
