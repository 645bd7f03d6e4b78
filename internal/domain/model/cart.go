package model

// CartItem is a product reference held in the ephemeral per-user cart.
type CartItem struct {
	ProductID int64
	Quantity  int
}

// CartLine is a cart item enriched with catalog data for presentation.
type CartLine struct {
	Product       Product
	Quantity      int
	SubtotalCents int64
}

// CartView aggregates the enriched cart content.
type CartView struct {
	Lines      []CartLine
	TotalCents int64
}
