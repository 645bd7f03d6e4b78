package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

const notificationLimit = 10

// NotificationUseCase synthesizes the back-office alert feed on every read.
// Nothing is persisted; the feed is a view over current row states.
type NotificationUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(orders repository.OrderRepository, products repository.ProductRepository) *NotificationUseCase {
	return &NotificationUseCase{orders: orders, products: products}
}

// List derives the alert feed: pending orders, failed payments, low-stock
// products and orders carrying customer notes, newest first, capped at 10.
func (u *NotificationUseCase) List(ctx context.Context) ([]model.Notification, error) {
	var feed []model.Notification

	pending, err := u.orders.ListByStatus(ctx, model.OrderStatusPending, notificationLimit)
	if err != nil {
		return nil, err
	}
	for _, o := range pending {
		feed = append(feed, model.Notification{
			ID:        fmt.Sprintf("pending-order:%s", o.Number),
			Type:      model.NotificationPendingOrder,
			Title:     "Pedido aguardando confirmação",
			Message:   fmt.Sprintf("Pedido %s aguarda processamento", o.Number),
			CreatedAt: o.CreatedAt,
		})
	}

	failed, err := u.orders.ListByPaymentStatus(ctx, model.PaymentStatusFailed, notificationLimit)
	if err != nil {
		return nil, err
	}
	for _, o := range failed {
		feed = append(feed, model.Notification{
			ID:        fmt.Sprintf("failed-payment:%s", o.Number),
			Type:      model.NotificationFailedPayment,
			Title:     "Pagamento recusado",
			Message:   fmt.Sprintf("Pagamento do pedido %s falhou", o.Number),
			CreatedAt: o.UpdatedAt,
		})
	}

	lowStock, err := u.products.ListLowStock(ctx, notificationLimit)
	if err != nil {
		return nil, err
	}
	for _, p := range lowStock {
		feed = append(feed, model.Notification{
			ID:        fmt.Sprintf("low-stock:%d", p.ID),
			Type:      model.NotificationLowStock,
			Title:     "Estoque baixo",
			Message:   fmt.Sprintf("Produto %q com apenas %d unidades", p.Name, p.StockQuantity),
			CreatedAt: p.UpdatedAt,
		})
	}

	noted, err := u.orders.ListWithNotes(ctx, notificationLimit)
	if err != nil {
		return nil, err
	}
	for _, o := range noted {
		feed = append(feed, model.Notification{
			ID:        fmt.Sprintf("order-note:%s", o.Number),
			Type:      model.NotificationOrderNote,
			Title:     "Pedido com observações",
			Message:   fmt.Sprintf("Pedido %s possui observações do cliente", o.Number),
			CreatedAt: o.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].CreatedAt.After(feed[j].CreatedAt) })
	if len(feed) > notificationLimit {
		feed = feed[:notificationLimit]
	}
	return feed, nil
}

// MarkRead acknowledges an alert. The feed is derived, so there is nothing to
// persist; the call succeeds and a subsequent List is unaffected.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return nil
}

// MarkAllRead acknowledges the whole feed. Same no-op contract as MarkRead.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context) error {
	return nil
}
