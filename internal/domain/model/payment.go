package model

import "time"

// PaymentStatus tracks gateway settlement state, distinct from but coupled to
// the order status.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// Payment is the settlement record created together with its order at
// checkout, one per order.
type Payment struct {
	ID                int64
	OrderID           int64
	OrderNumber       string
	Status            PaymentStatus
	Method            string
	GatewayReference  string
	Notes             string
	RefundAmountCents *int64
	RefundReason      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidPaymentStatus reports whether the value is an accepted payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusPartiallyRefunded:
		return true
	}
	return false
}

// PaymentUpdate carries an admin or gateway initiated payment status change.
type PaymentUpdate struct {
	Status            PaymentStatus
	Notes             string
	RefundAmountCents *int64
	RefundReason      string
}

// DeliveryUpdate carries an admin initiated shipment status change.
type DeliveryUpdate struct {
	Status            DeliveryStatus
	TrackingCode      string
	EstimatedDelivery *time.Time
	Notes             string
}
