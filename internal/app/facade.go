package app

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/adapter/gateway"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
	"github.com/eletrofluxo/storefront/internal/usecase"
)

// PaymentProvider exposes the gateway lookups required by the facade.
type PaymentProvider interface {
	FetchPayment(ctx context.Context, reference string) (*gateway.Payment, error)
}

// StorefrontFacade aggregates the use cases behind a single application API
// consumed by the HTTP handlers and the payment watcher.
type StorefrontFacade struct {
	auth          *usecase.AuthUseCase
	catalog       *usecase.CatalogUseCase
	cart          *usecase.CartUseCase
	orders        *usecase.OrderUseCase
	reconcile     *usecase.ReconcileUseCase
	notifications *usecase.NotificationUseCase
	payments      repository.PaymentRepository
	provider      PaymentProvider
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	reconcile *usecase.ReconcileUseCase,
	notifications *usecase.NotificationUseCase,
	payments repository.PaymentRepository,
	provider PaymentProvider,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:          auth,
		catalog:       catalog,
		cart:          cart,
		orders:        orders,
		reconcile:     reconcile,
		notifications: notifications,
		payments:      payments,
		provider:      provider,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, name, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64, includeInactive bool) (*model.Product, error) {
	return f.catalog.Get(ctx, id, includeInactive)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, p)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, p *model.Product) error {
	return f.catalog.Update(ctx, p)
}

func (f *StorefrontFacade) DeactivateProduct(ctx context.Context, id int64) error {
	return f.catalog.Deactivate(ctx, id)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) (*model.CartView, error) {
	return f.cart.View(ctx, userID)
}

func (f *StorefrontFacade) AddCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.AddItem(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

// Checkout converts the caller's cart into an order. The payer email comes
// from the authenticated account.
func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64, notes string) (*model.Order, string, error) {
	usr, err := f.auth.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return f.orders.Checkout(ctx, userID, usr.Email, notes)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StorefrontFacade) Order(ctx context.Context, number string, userID int64, isAdmin bool) (*model.Order, []model.OrderItem, error) {
	return f.orders.Get(ctx, number, userID, isAdmin)
}

func (f *StorefrontFacade) ApplyPaymentUpdate(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error) {
	return f.reconcile.ApplyPayment(ctx, number, upd)
}

func (f *StorefrontFacade) ApplyDeliveryUpdate(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error) {
	return f.reconcile.ApplyDelivery(ctx, number, upd)
}

func (f *StorefrontFacade) Notifications(ctx context.Context) ([]model.Notification, error) {
	return f.notifications.List(ctx)
}

func (f *StorefrontFacade) MarkNotificationRead(ctx context.Context, id string) error {
	return f.notifications.MarkRead(ctx, id)
}

func (f *StorefrontFacade) MarkAllNotificationsRead(ctx context.Context) error {
	return f.notifications.MarkAllRead(ctx)
}

func (f *StorefrontFacade) PendingPayments(ctx context.Context, limit int) ([]model.Payment, error) {
	return f.payments.ListPending(ctx, limit)
}

func (f *StorefrontFacade) GatewayPayment(ctx context.Context, reference string) (*gateway.Payment, error) {
	return f.provider.FetchPayment(ctx, reference)
}
