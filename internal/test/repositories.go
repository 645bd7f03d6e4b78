package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub creates an initialized stub.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: map[string]*model.User{}, ByID: map[int64]*model.User{}}
}

func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Users[email]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Next++
	u := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.Users[email] = u
	s.ByID[u.ID] = u
	return u, nil
}

func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.Users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Items map[int64]*model.Product
	Next  int64
	Err   error
}

// NewProductRepositoryStub creates an initialized stub.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Items: map[int64]*model.Product{}}
}

// Seed inserts a product with an assigned ID and returns it.
func (s *ProductRepositoryStub) Seed(p model.Product) *model.Product {
	s.Next++
	p.ID = s.Next
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	stored := p
	s.Items[p.ID] = &stored
	return &stored
}

func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Items {
		if existing.SKU == p.SKU {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	return s.Seed(*p), nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.Items[p.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	updated := *p
	updated.SKU = existing.SKU
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.Items[p.ID] = &updated
	return nil
}

func (s *ProductRepositoryStub) Deactivate(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.Items[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.IsActive = false
	return nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Items {
		if p.IsActive {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (s *ProductRepositoryStub) ListLowStock(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Items {
		if p.IsActive && p.LowStock() && len(result) < limit {
			result = append(result, *p)
		}
	}
	return result, nil
}

// OrderRepositoryStub stores orders in-memory and mirrors the transactional
// status derivation of the real repository.
type OrderRepositoryStub struct {
	Orders   map[string]*model.Order
	Items    map[int64][]model.OrderItem
	Payments map[string]*model.Payment
	Next     int64
	Err      error
}

// NewOrderRepositoryStub creates an initialized stub.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:   map[string]*model.Order{},
		Items:    map[int64][]model.OrderItem{},
		Payments: map[string]*model.Payment{},
	}
}

func (s *OrderRepositoryStub) CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem, payment *model.Payment) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Orders[order.Number]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Next++
	created := *order
	created.ID = s.Next
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.Orders[created.Number] = &created

	stored := make([]model.OrderItem, 0, len(items))
	for i, item := range items {
		item.ID = int64(i + 1)
		item.OrderID = created.ID
		stored = append(stored, item)
	}
	s.Items[created.ID] = stored

	pay := *payment
	pay.OrderID = created.ID
	pay.OrderNumber = created.Number
	s.Payments[created.Number] = &pay

	copied := created
	return &copied, nil
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Orders[number]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items[orderID], nil
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.Status == status && len(result) < limit {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByPaymentStatus(ctx context.Context, status model.PaymentStatus, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.PaymentStatus == status && len(result) < limit {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListWithNotes(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if strings.TrimSpace(o.Notes) != "" && len(result) < limit {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ApplyPaymentEvent(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Orders[number]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if pay, ok := s.Payments[number]; ok {
		pay.Status = upd.Status
		if upd.Notes != "" {
			pay.Notes = upd.Notes
		}
		if upd.RefundAmountCents != nil {
			pay.RefundAmountCents = upd.RefundAmountCents
		}
		if upd.RefundReason != "" {
			pay.RefundReason = upd.RefundReason
		}
		pay.UpdatedAt = time.Now()
	}

	o.PaymentStatus = upd.Status
	if next, ok := model.DeriveOrderStatus(model.StatusEvent{Kind: model.EventPayment, Value: string(upd.Status)}); ok {
		o.Status = next
	}
	o.UpdatedAt = time.Now()

	copied := *o
	return &copied, nil
}

func (s *OrderRepositoryStub) ApplyDeliveryEvent(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Orders[number]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if next, ok := model.DeriveOrderStatus(model.StatusEvent{Kind: model.EventDelivery, Value: string(upd.Status)}); ok {
		o.Status = next
	}
	if upd.TrackingCode != "" {
		o.TrackingCode = upd.TrackingCode
	}
	if upd.EstimatedDelivery != nil {
		o.EstimatedDelivery = upd.EstimatedDelivery
	}
	if upd.Notes != "" {
		o.Notes = upd.Notes
	}
	if upd.Status == model.DeliveryStatusDelivered && o.DeliveredAt == nil {
		now := time.Now().UTC()
		o.DeliveredAt = &now
	}
	o.UpdatedAt = time.Now()

	copied := *o
	return &copied, nil
}

// PaymentRepositoryStub exposes payments recorded by OrderRepositoryStub.
type PaymentRepositoryStub struct {
	Orders  *OrderRepositoryStub
	Pending []model.Payment
	Err     error
}

func (s *PaymentRepositoryStub) GetByOrderNumber(ctx context.Context, number string) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders != nil {
		if p, ok := s.Orders.Payments[number]; ok {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PaymentRepositoryStub) ListPending(ctx context.Context, limit int) ([]model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders != nil {
		var result []model.Payment
		for _, p := range s.Orders.Payments {
			if p.Status == model.PaymentStatusPending && p.GatewayReference != "" && len(result) < limit {
				result = append(result, *p)
			}
		}
		return result, nil
	}
	if len(s.Pending) > limit {
		return s.Pending[:limit], nil
	}
	return s.Pending, nil
}

// CartStoreStub keeps carts in plain maps.
type CartStoreStub struct {
	Data map[int64]map[int64]int
	Err  error
}

// NewCartStoreStub creates an initialized stub.
func NewCartStoreStub() *CartStoreStub {
	return &CartStoreStub{Data: map[int64]map[int64]int{}}
}

func (s *CartStoreStub) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.CartItem
	for productID, qty := range s.Data[userID] {
		items = append(items, model.CartItem{ProductID: productID, Quantity: qty})
	}
	return items, nil
}

func (s *CartStoreStub) SetItem(ctx context.Context, userID, productID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Data[userID] == nil {
		s.Data[userID] = map[int64]int{}
	}
	s.Data[userID][productID] = quantity
	return nil
}

func (s *CartStoreStub) RemoveItem(ctx context.Context, userID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Data[userID], productID)
	return nil
}

func (s *CartStoreStub) Clear(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Data, userID)
	return nil
}

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.ProductRepository = (*ProductRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.PaymentRepository = (*PaymentRepositoryStub)(nil)
)
