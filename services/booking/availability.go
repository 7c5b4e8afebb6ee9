package booking

import (
	"context"
	"fmt"
	"time"

	"salonhq/config"
	"salonhq/services/availability"
	"salonhq/utils"
)

// Availability answers the public slot query for a date and service
// selection. It assembles the engine's inputs (catalog durations and the
// day's active bookings) and delegates the arithmetic to the engine.
func (s *DefaultBookingService) Availability(ctx context.Context, date string, services []string, now time.Time) ([]string, error) {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	durations, err := s.Catalog.Durations(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.activeReservations(ctx, date)
	if err != nil {
		return nil, err
	}

	return availability.AvailableSlots(availability.Request{
		Date:          date,
		Services:      services,
		Catalog:       durations,
		Reservations:  reservations,
		Now:           now,
		OpenMinutes:   config.AppConfig.OpenMinutes,
		CloseMinutes:  config.AppConfig.CloseMinutes,
		Granularity:   config.AppConfig.SlotGranularity,
		MaxConcurrent: config.AppConfig.MaxChairs,
	}), nil
}
