package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// DeliveryStatus is a view over the order lifecycle; there is no persisted
// delivery entity, the value is synthesized from the order row on read.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Order describes a purchase registered at checkout.
type Order struct {
	ID                int64
	UserID            int64
	Number            string
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	TotalCents        int64
	Notes             string
	TrackingCode      string
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is a single product line inside an order. The product name and
// unit price are captured at checkout time so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID             int64
	OrderID        int64
	ProductID      int64
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// DeliveryStatus derives the shipment view from the order status.
func (o Order) DeliveryStatus() DeliveryStatus {
	switch o.Status {
	case OrderStatusShipped:
		return DeliveryStatusInTransit
	case OrderStatusDelivered:
		return DeliveryStatusDelivered
	case OrderStatusCancelled:
		return DeliveryStatusFailed
	default:
		return DeliveryStatusPending
	}
}

// ValidDeliveryStatus reports whether the value is an accepted delivery status.
func ValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	}
	return false
}
