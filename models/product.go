package models

import "time"

// LowStockThreshold is the quantity below which a product is flagged on the
// admin dashboard.
const LowStockThreshold = 5

// Product is a retail/consumable inventory item.
type Product struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Brand     string    `bson:"brand,omitempty" json:"brand,omitempty"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Price     float64   `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// LowStock reports whether the product needs restocking.
func (p *Product) LowStock() bool {
	return p.Quantity < LowStockThreshold
}
