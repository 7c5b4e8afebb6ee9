package catalog

import (
	"context"

	"salonhq/models"
	"salonhq/services/availability"
)

// CatalogService manages the offerable services and exposes the parsed
// duration snapshot consumed by the availability engine.
type CatalogService interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service models.Service) (string, error)
	Update(ctx context.Context, id string, service models.Service) error
	Delete(ctx context.Context, id string) error
	Durations(ctx context.Context) (map[string]availability.Duration, error)
	SeedDefaults(ctx context.Context) error
}
