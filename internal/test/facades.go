package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eletrofluxo/storefront/internal/adapter/gateway"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, model.Role, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password)
	}
	return &model.User{ID: 1, Email: email, Name: name, Role: model.RoleCustomer}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleCustomer, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ProductsFn   func(context.Context) ([]model.Product, error)
	ProductFn    func(context.Context, int64, bool) (*model.Product, error)
	CreateFn     func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn     func(context.Context, *model.Product) error
	DeactivateFn func(context.Context, int64) error
}

func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, SKU: "SKU-1", Name: "Disjuntor 20A", PriceCents: 2500, IsActive: true}}, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64, includeInactive bool) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id, includeInactive)
	}
	return &model.Product{ID: id, SKU: "SKU-1", Name: "Disjuntor 20A", PriceCents: 2500, IsActive: true}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	created := *p
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, p *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return nil
}

func (s CatalogFacadeStub) DeactivateProduct(ctx context.Context, id int64) error {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn   func(context.Context, int64) (*model.CartView, error)
	AddFn    func(context.Context, int64, int64, int) error
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.CartView, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.CartView{}, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn  func(context.Context, int64, string) (*model.Order, string, error)
	OrdersFn    func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn func(context.Context) ([]model.Order, error)
	OrderFn     func(context.Context, string, int64, bool) (*model.Order, []model.OrderItem, error)
}

func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, notes string) (*model.Order, string, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, notes)
	}
	return &model.Order{Number: "EF-0000000001", UserID: userID, Status: model.OrderStatusPending}, "https://pay.example/session", nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{Number: "EF-0000000001", UserID: userID}}, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{Number: "EF-0000000001"}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, number string, userID int64, isAdmin bool) (*model.Order, []model.OrderItem, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, number, userID, isAdmin)
	}
	return &model.Order{Number: number, UserID: userID}, nil, nil
}

// ReconcileFacadeStub records applied status updates.
type ReconcileFacadeStub struct {
	PaymentFn  func(context.Context, string, model.PaymentUpdate) (*model.Order, error)
	DeliveryFn func(context.Context, string, model.DeliveryUpdate) (*model.Order, error)
}

func (s ReconcileFacadeStub) ApplyPaymentUpdate(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, number, upd)
	}
	return &model.Order{Number: number, PaymentStatus: upd.Status}, nil
}

func (s ReconcileFacadeStub) ApplyDeliveryUpdate(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error) {
	if s.DeliveryFn != nil {
		return s.DeliveryFn(ctx, number, upd)
	}
	return &model.Order{Number: number}, nil
}

// NotificationFacadeStub serves a predefined alert feed.
type NotificationFacadeStub struct {
	ListFn        func(context.Context) ([]model.Notification, error)
	MarkReadFn    func(context.Context, string) error
	MarkAllReadFn func(context.Context) error
}

func (s NotificationFacadeStub) Notifications(ctx context.Context) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Notification{{ID: "pending-order:EF-0000000001", Type: model.NotificationPendingOrder}}, nil
}

func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, id string) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, id)
	}
	return nil
}

func (s NotificationFacadeStub) MarkAllNotificationsRead(ctx context.Context) error {
	if s.MarkAllReadFn != nil {
		return s.MarkAllReadFn(ctx)
	}
	return nil
}

// StorefrontFacadeStub aggregates all handler-facing stubs into one implementation.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ReconcileFacadeStub
	NotificationFacadeStub
}

// PaymentUpdateCall stores information about ApplyPaymentUpdate invocations.
type PaymentUpdateCall struct {
	OrderNumber string
	Update      model.PaymentUpdate
}

// WatcherFacadeStub mimics worker interactions with the storefront facade.
type WatcherFacadeStub struct {
	Batches        [][]model.Payment
	PendingFn      func(context.Context, int) ([]model.Payment, error)
	GatewayFn      func(context.Context, string) (*gateway.Payment, error)
	ApplyFn        func(context.Context, string, model.PaymentUpdate) (*model.Order, error)
	Applied        []PaymentUpdateCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WatcherFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WatcherFacadeStub) Unlock() { s.mu.Unlock() }

// PendingPayments returns batches from the configured queue.
func (s *WatcherFacadeStub) PendingPayments(ctx context.Context, limit int) ([]model.Payment, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// GatewayPayment returns the configured settlement state.
func (s *WatcherFacadeStub) GatewayPayment(ctx context.Context, reference string) (*gateway.Payment, error) {
	if s.GatewayFn != nil {
		return s.GatewayFn(ctx, reference)
	}
	return &gateway.Payment{Reference: reference, Status: gateway.StatusApproved}, nil
}

// ApplyPaymentUpdate records applied updates.
func (s *WatcherFacadeStub) ApplyPaymentUpdate(ctx context.Context, orderNumber string, upd model.PaymentUpdate) (*model.Order, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, orderNumber, upd)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Applied = append(s.Applied, PaymentUpdateCall{OrderNumber: orderNumber, Update: upd})
	return &model.Order{Number: orderNumber, PaymentStatus: upd.Status}, nil
}

// CheckoutGatewayStub opens fake checkout sessions.
type CheckoutGatewayStub struct {
	CreateFn func(context.Context, string, int64, string) (usecase.CheckoutSession, error)
	Err      error
}

// CreateCheckout returns a deterministic session or the configured error.
func (s CheckoutGatewayStub) CreateCheckout(ctx context.Context, orderNumber string, amountCents int64, payerEmail string) (usecase.CheckoutSession, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderNumber, amountCents, payerEmail)
	}
	if s.Err != nil {
		return usecase.CheckoutSession{}, s.Err
	}
	return usecase.CheckoutSession{Reference: "pref-" + orderNumber, PaymentURL: "https://pay.example/" + orderNumber}, nil
}

// GatewayClientStub implements the full gateway client contract.
type GatewayClientStub struct {
	CreateFn func(context.Context, gateway.PreferenceRequest) (*gateway.Preference, error)
	FetchFn  func(context.Context, string) (*gateway.Payment, error)
}

// CreatePreference returns a deterministic checkout session.
func (s GatewayClientStub) CreatePreference(ctx context.Context, req gateway.PreferenceRequest) (*gateway.Preference, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &gateway.Preference{ID: "pref-" + req.OrderNumber, InitPoint: "https://pay.example/" + req.OrderNumber}, nil
}

// FetchPayment returns an approved settlement by default.
func (s GatewayClientStub) FetchPayment(ctx context.Context, reference string) (*gateway.Payment, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, reference)
	}
	return &gateway.Payment{Reference: reference, Status: gateway.StatusApproved}, nil
}

// PaymentProviderStub fetches gateway settlement states for tests.
type PaymentProviderStub struct {
	FetchFn func(context.Context, string) (*gateway.Payment, error)
	Payment *gateway.Payment
	Err     error
}

// FetchPayment returns the configured response or an approved settlement.
func (s PaymentProviderStub) FetchPayment(ctx context.Context, reference string) (*gateway.Payment, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, reference)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Payment != nil {
		return s.Payment, nil
	}
	return &gateway.Payment{Reference: reference, Status: gateway.StatusApproved}, nil
}
