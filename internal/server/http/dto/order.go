package dto

import "time"

// CheckoutRequest describes the optional checkout payload.
type CheckoutRequest struct {
	Notes string `json:"notes"`
}

// CheckoutResponse returns the created order and the hosted payment URL.
type CheckoutResponse struct {
	Order      OrderResponse `json:"order"`
	PaymentURL string        `json:"payment_url"`
}

// OrderItemResponse is a captured order line.
type OrderItemResponse struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// OrderResponse is the order representation shared by storefront and back office.
type OrderResponse struct {
	Number            string              `json:"number"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	DeliveryStatus    string              `json:"delivery_status"`
	TotalCents        int64               `json:"total_cents"`
	Notes             string              `json:"notes,omitempty"`
	TrackingCode      string              `json:"tracking_code,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	Items             []OrderItemResponse `json:"items,omitempty"`
}
