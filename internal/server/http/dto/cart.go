package dto

// CartItemRequest upserts one product quantity in the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLineResponse is one cart entry enriched with catalog data.
type CartLineResponse struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"price_cents"`
	Quantity      int    `json:"quantity"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// CartResponse aggregates the cart content.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}
