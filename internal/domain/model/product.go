package model

import "time"

// Product is a catalog entry for electrical/hydraulic materials.
type Product struct {
	ID                int64
	SKU               string
	Name              string
	Description       string
	PriceCents        int64
	StockQuantity     int
	LowStockThreshold int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LowStock reports whether the product is at or below its alert threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
