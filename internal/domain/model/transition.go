package model

// EventKind discriminates the two sources of order status changes.
type EventKind string

const (
	EventPayment  EventKind = "payment"
	EventDelivery EventKind = "delivery"
)

// StatusEvent is the single input of the order status derivation. Both the
// payment and the delivery update paths funnel through it, so the two can no
// longer disagree on how an order status is produced.
type StatusEvent struct {
	Kind  EventKind
	Value string
}

var orderStatusByEvent = map[EventKind]map[string]OrderStatus{
	EventPayment: {
		string(PaymentStatusPaid):     OrderStatusConfirmed,
		string(PaymentStatusFailed):   OrderStatusCancelled,
		string(PaymentStatusRefunded): OrderStatusRefunded,
	},
	EventDelivery: {
		string(DeliveryStatusInTransit): OrderStatusShipped,
		string(DeliveryStatusDelivered): OrderStatusDelivered,
		string(DeliveryStatusFailed):    OrderStatusCancelled,
	},
}

// DeriveOrderStatus resolves the order status an event maps to. The second
// return is false when the event leaves the order status unchanged, e.g. a
// payment moving to partially_refunded or a delivery reset to pending.
func DeriveOrderStatus(ev StatusEvent) (OrderStatus, bool) {
	status, ok := orderStatusByEvent[ev.Kind][ev.Value]
	return status, ok
}
