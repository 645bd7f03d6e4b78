package model

import "time"

// NotificationType identifies the derivation source of an alert.
type NotificationType string

const (
	NotificationPendingOrder  NotificationType = "pending_order"
	NotificationFailedPayment NotificationType = "failed_payment"
	NotificationLowStock      NotificationType = "low_stock"
	NotificationOrderNote     NotificationType = "order_note"
)

// Notification is an ephemeral back-office alert synthesized on read from
// current row states. Nothing here is persisted.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	CreatedAt time.Time
}
