package catalog

import (
	"context"
	"fmt"

	"salonhq/models"
	"salonhq/utils"

	"go.uber.org/zap"
)

// defaultServices is the salon's standing menu, loaded once into an empty
// catalog so a fresh deployment can take bookings immediately.
var defaultServices = []models.Service{
	{Name: "Hydra Facial", TimeRequired: "60-90 min", PriceRange: models.PriceRange{From: 1999, To: 3999}, Description: "Deep cleansing hydra facial treatment for glowing, rejuvenated skin."},
	{Name: "Hair Spa", TimeRequired: "45-60 min", PriceRange: models.PriceRange{From: 1000, To: 2500}, Description: "Luxurious hair spa treatment to nourish, repair and strengthen hair."},
	{Name: "Bridal Makeup", TimeRequired: "3-4 hours", PriceRange: models.PriceRange{From: 15000, To: 35000}, Description: "Complete bridal makeup package with HD finish."},
	{Name: "Hair Styling", TimeRequired: "30-45 min", PriceRange: models.PriceRange{From: 500, To: 1500}, Description: "Professional cuts, blowouts and styling."},
	{Name: "Manicure & Pedicure", TimeRequired: "60-75 min", PriceRange: models.PriceRange{From: 800, To: 2000}, Description: "Complete hand and foot care with premium products."},
	{Name: "Threading & Shaping", TimeRequired: "15-20 min", PriceRange: models.PriceRange{From: 100, To: 400}, Description: "Precise eyebrow threading and face shaping."},
	{Name: "Full Body Waxing", TimeRequired: "90-120 min", PriceRange: models.PriceRange{From: 2000, To: 4500}, Description: "Smooth, long-lasting full body waxing."},
	{Name: "Men's Haircut", TimeRequired: "20-30 min", PriceRange: models.PriceRange{From: 300, To: 800}, Description: "Classic and modern cuts for men."},
}

// SeedDefaults inserts the standing menu when the services collection is
// empty. A partially populated catalog is left untouched.
func (s *DefaultCatalogService) SeedDefaults(ctx context.Context) error {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count catalog services: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, svc := range defaultServices {
		if _, err := s.Repo.Create(ctx, svc); err != nil {
			return fmt.Errorf("failed to seed service %q: %w", svc.Name, err)
		}
	}
	s.invalidate(ctx)
	utils.GetLogger().Info("seeded default service catalog", zap.Int("services", len(defaultServices)))
	return nil
}
