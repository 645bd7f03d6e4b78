package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// CheckoutSession is a hosted gateway checkout opened for an order.
type CheckoutSession struct {
	Reference  string
	PaymentURL string
}

// CheckoutGateway opens hosted checkout sessions at the payment gateway.
type CheckoutGateway interface {
	CreateCheckout(ctx context.Context, orderNumber string, amountCents int64, payerEmail string) (CheckoutSession, error)
}

// OrderUseCase encapsulates checkout and order reads.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	cart     CartStore
	gateway  CheckoutGateway
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, cart CartStore, gateway CheckoutGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, cart: cart, gateway: gateway}
}

// NewOrderNumber produces a storefront order number.
func NewOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "EF-" + raw[:10]
}

// Checkout turns the user's cart into an order with a pending payment. The
// order, its items, the stock decrement and the payment row are committed in
// one transaction; the cart is cleared only after the commit.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, payerEmail, notes string) (*model.Order, string, error) {
	items, err := u.cart.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", domainErrors.ErrEmptyCart
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	var (
		orderItems []model.OrderItem
		totalCents int64
	)
	for _, item := range items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, "", err
		}
		if !product.IsActive {
			return nil, "", domainErrors.ErrProductInactive
		}
		if product.StockQuantity < item.Quantity {
			return nil, "", domainErrors.ErrInsufficientStock
		}
		orderItems = append(orderItems, model.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		totalCents += product.PriceCents * int64(item.Quantity)
	}

	number := NewOrderNumber()
	session, err := u.gateway.CreateCheckout(ctx, number, totalCents, payerEmail)
	if err != nil {
		return nil, "", err
	}

	order := &model.Order{
		UserID:        userID,
		Number:        number,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		TotalCents:    totalCents,
		Notes:         strings.TrimSpace(notes),
	}
	payment := &model.Payment{
		Status:           model.PaymentStatusPending,
		GatewayReference: session.Reference,
	}

	created, err := u.orders.CreateWithItems(ctx, order, orderItems, payment)
	if err != nil {
		return nil, "", err
	}

	_ = u.cart.Clear(ctx, userID)

	return created, session.PaymentURL, nil
}

// ListByUser returns the caller's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order for the back office.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Get fetches one order with its items. Customers only see their own orders;
// foreign numbers read as not found rather than forbidden.
func (u *OrderUseCase) Get(ctx context.Context, number string, userID int64, isAdmin bool) (*model.Order, []model.OrderItem, error) {
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, nil, domainErrors.ErrNotFound
	}

	items, err := u.orders.ItemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}
