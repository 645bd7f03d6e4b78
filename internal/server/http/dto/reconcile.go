package dto

import "time"

// PaymentUpdateRequest is the admin payment reconciliation payload.
type PaymentUpdateRequest struct {
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	RefundAmount *int64 `json:"refund_amount"`
	RefundReason string `json:"refund_reason"`
}

// DeliveryUpdateRequest is the admin delivery reconciliation payload. OrderID
// carries the order number.
type DeliveryUpdateRequest struct {
	OrderID           string     `json:"orderId"`
	Status            string     `json:"status"`
	TrackingCode      string     `json:"trackingCode"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	Notes             string     `json:"notes"`
}
