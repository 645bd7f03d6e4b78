package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/domain/repository"
)

// pgxPool abstracts pgxpool.Pool so storage can be tested with pgxmock.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            sku TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price_cents BIGINT NOT NULL,
            stock_quantity INT NOT NULL DEFAULT 0,
            low_stock_threshold INT NOT NULL DEFAULT 5,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            total_cents BIGINT NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            tracking_code TEXT NOT NULL DEFAULT '',
            estimated_delivery TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            product_name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price_cents BIGINT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            method TEXT NOT NULL DEFAULT '',
            gateway_reference TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            refund_amount_cents BIGINT,
            refund_reason TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.Name = name
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, created_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, sku, name, description, price_cents, stock_quantity, low_stock_threshold, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.StockQuantity, &p.LowStockThreshold, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.StockQuantity, &p.LowStockThreshold, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (sku, name, description, price_cents, stock_quantity, low_stock_threshold, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *p
	err := r.storage.pool.QueryRow(ctx, query, p.SKU, p.Name, p.Description, p.PriceCents, p.StockQuantity, p.LowStockThreshold, p.IsActive).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	const query = `UPDATE products
                   SET name=$1, description=$2, price_cents=$3, stock_quantity=$4, low_stock_threshold=$5, is_active=$6, updated_at=NOW()
                   WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query, p.Name, p.Description, p.PriceCents, p.StockQuantity, p.LowStockThreshold, p.IsActive, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE products SET is_active=FALSE, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *productRepository) ListLowStock(ctx context.Context, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
              WHERE is_active AND stock_quantity <= low_stock_threshold
              ORDER BY updated_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, number, status, payment_status, total_cents, notes, tracking_code, estimated_delivery, delivered_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.PaymentStatus, &o.TotalCents, &o.Notes, &o.TrackingCode, &o.EstimatedDelivery, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.PaymentStatus, &o.TotalCents, &o.Notes, &o.TrackingCode, &o.EstimatedDelivery, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem, payment *model.Payment) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, number, status, payment_status, total_cents, notes)
                             VALUES ($1, $2, $3, $4, $5, $6)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.UserID, order.Number, order.Status, order.PaymentStatus, order.TotalCents, order.Notes).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents)
                            VALUES ($1, $2, $3, $4, $5)`
		const decrementStock = `UPDATE products SET stock_quantity = stock_quantity - $1, updated_at=NOW()
                                WHERE id=$2 AND stock_quantity >= $1`
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem, created.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents); err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, decrementStock, item.Quantity, item.ProductID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}
		}

		const insertPayment = `INSERT INTO payments (order_id, status, method, gateway_reference)
                               VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertPayment, created.ID, payment.Status, payment.Method, payment.GatewayReference); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, number))
}

func (r *orderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, product_name, quantity, unit_price_cents
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByPaymentStatus(ctx context.Context, status model.PaymentStatus, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_status=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListWithNotes(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE notes <> '' ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

// ApplyPaymentEvent writes the payment row and the derived order status in a
// single transaction. The order row is locked first, so a concurrent delivery
// event on the same order serializes behind this one and the last committed
// write wins.
func (r *orderRepository) ApplyPaymentEvent(ctx context.Context, number string, upd model.PaymentUpdate) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, number)
		if err != nil {
			return err
		}

		const updatePayment = `UPDATE payments
                               SET status=$1,
                                   notes=COALESCE(NULLIF($2,''), notes),
                                   refund_amount_cents=COALESCE($3, refund_amount_cents),
                                   refund_reason=COALESCE(NULLIF($4,''), refund_reason),
                                   updated_at=NOW()
                               WHERE order_id=$5`
		if _, err := tx.Exec(ctx, updatePayment, upd.Status, upd.Notes, upd.RefundAmountCents, upd.RefundReason, order.ID); err != nil {
			return err
		}

		status := order.Status
		if next, ok := model.DeriveOrderStatus(model.StatusEvent{Kind: model.EventPayment, Value: string(upd.Status)}); ok {
			status = next
		}

		const updateOrder = `UPDATE orders SET payment_status=$1, status=$2, updated_at=NOW() WHERE id=$3`
		if _, err := tx.Exec(ctx, updateOrder, upd.Status, status, order.ID); err != nil {
			return err
		}

		order.PaymentStatus = upd.Status
		order.Status = status
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApplyDeliveryEvent mirrors ApplyPaymentEvent for the shipment view. There is
// no delivery row to touch; the event resolves against the same order row
// through the same transition table.
func (r *orderRepository) ApplyDeliveryEvent(ctx context.Context, number string, upd model.DeliveryUpdate) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, number)
		if err != nil {
			return err
		}

		status := order.Status
		if next, ok := model.DeriveOrderStatus(model.StatusEvent{Kind: model.EventDelivery, Value: string(upd.Status)}); ok {
			status = next
		}

		var deliveredAt *time.Time
		if upd.Status == model.DeliveryStatusDelivered {
			now := time.Now().UTC()
			deliveredAt = &now
		}

		const updateOrder = `UPDATE orders
                             SET status=$1,
                                 tracking_code=COALESCE(NULLIF($2,''), tracking_code),
                                 estimated_delivery=COALESCE($3, estimated_delivery),
                                 notes=COALESCE(NULLIF($4,''), notes),
                                 delivered_at=COALESCE(delivered_at, $5),
                                 updated_at=NOW()
                             WHERE id=$6`
		if _, err := tx.Exec(ctx, updateOrder, status, upd.TrackingCode, upd.EstimatedDelivery, upd.Notes, deliveredAt, order.ID); err != nil {
			return err
		}

		order.Status = status
		if upd.TrackingCode != "" {
			order.TrackingCode = upd.TrackingCode
		}
		if upd.EstimatedDelivery != nil {
			order.EstimatedDelivery = upd.EstimatedDelivery
		}
		if upd.Notes != "" {
			order.Notes = upd.Notes
		}
		if order.DeliveredAt == nil && deliveredAt != nil {
			order.DeliveredAt = deliveredAt
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func lockOrder(ctx context.Context, tx pgx.Tx, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number=$1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, query, number))
}

// --- PaymentRepository implementation ---

const paymentColumns = `p.id, p.order_id, o.number, p.status, p.method, p.gateway_reference, p.notes, p.refund_amount_cents, p.refund_reason, p.created_at, p.updated_at`

func (r *paymentRepository) GetByOrderNumber(ctx context.Context, number string) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p JOIN orders o ON o.id = p.order_id WHERE o.number=$1`
	var p model.Payment
	err := r.storage.pool.QueryRow(ctx, query, number).
		Scan(&p.ID, &p.OrderID, &p.OrderNumber, &p.Status, &p.Method, &p.GatewayReference, &p.Notes, &p.RefundAmountCents, &p.RefundReason, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListPending(ctx context.Context, limit int) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p JOIN orders o ON o.id = p.order_id
              WHERE p.status='pending' AND p.gateway_reference <> ''
              ORDER BY p.created_at LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.OrderNumber, &p.Status, &p.Method, &p.GatewayReference, &p.Notes, &p.RefundAmountCents, &p.RefundReason, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
