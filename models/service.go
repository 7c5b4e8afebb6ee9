package models

import "time"

// PriceRange is the advertised price band for a service.
type PriceRange struct {
	From float64 `bson:"from" json:"from"`
	To   float64 `bson:"to" json:"to"`
}

// Service is a catalog entry for an offerable salon service. TimeRequired is
// a human-readable duration string ("45-60 min", "2 hours"); the catalog
// service parses it into minute counts for the availability engine.
type Service struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Image        string     `bson:"image,omitempty" json:"image,omitempty"`
	PriceRange   PriceRange `bson:"priceRange" json:"priceRange"`
	SecretPrice  float64    `bson:"secretPrice,omitempty" json:"secretPrice,omitempty"` // internal rate used for billing and revenue
	TimeRequired string     `bson:"timeRequired" json:"timeRequired"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
