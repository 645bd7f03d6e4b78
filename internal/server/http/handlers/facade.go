package handlers

import (
	"context"

	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64, includeInactive bool) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeactivateProduct(ctx context.Context, id int64) error
}

// CartFacade provides cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.CartView, error)
	AddCartItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade provides checkout and order reads.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, notes string) (*model.Order, string, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, number string, userID int64, isAdmin bool) (*model.Order, []model.OrderItem, error)
}

// ReconcileFacade applies payment and delivery status changes.
type ReconcileFacade interface {
	ApplyPaymentUpdate(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error)
	ApplyDeliveryUpdate(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error)
}

// NotificationFacade provides the back-office alert feed.
type NotificationFacade interface {
	Notifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	ReconcileFacade
	NotificationFacade
}
