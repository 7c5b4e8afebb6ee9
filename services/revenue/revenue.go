package revenue

import (
	"context"
	"fmt"
	"time"

	bookingRepo "salonhq/database/repository/booking"
	"salonhq/models"
	"salonhq/services/catalog"
	"salonhq/utils"
)

// Stats is the admin revenue dashboard payload. All figures cover completed
// bookings only.
type Stats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	DailyRevenue      float64 `json:"dailyRevenue"`   // completed today
	WeeklyRevenue     float64 `json:"weeklyRevenue"`  // last 7 days
	MonthlyRevenue    float64 `json:"monthlyRevenue"` // last 30 days
	AverageOrderValue float64 `json:"averageOrderValue"`
	CompletedCount    int     `json:"completedCount"`
	TopService        string  `json:"topService"`
	TopServiceCount   int     `json:"topServiceCount"`
}

// Compute derives revenue stats from completed bookings. The price of a
// booking is the sum of the catalog's internal rates over its services; when
// none of its services carry a rate, the amount collected at the desk is used
// instead. Bookings without a completion timestamp fall back to their booked
// date for window bucketing.
func Compute(bookings []models.Booking, services []models.Service, now time.Time) Stats {
	rates := make(map[string]float64, len(services))
	for _, svc := range services {
		rates[svc.Name] = svc.SecretPrice
	}

	weekCutoff := now.AddDate(0, 0, -7)
	monthCutoff := now.AddDate(0, 0, -30)
	today := now.Format(utils.DateLayout)

	var stats Stats
	serviceCounts := make(map[string]int)

	for _, b := range bookings {
		if b.Status != models.BookingStatusCompleted {
			continue
		}
		price := bookingPrice(&b, rates)
		when := completionTime(&b)

		stats.TotalRevenue += price
		stats.CompletedCount++
		if when.Format(utils.DateLayout) == today {
			stats.DailyRevenue += price
		}
		if when.After(weekCutoff) {
			stats.WeeklyRevenue += price
		}
		if when.After(monthCutoff) {
			stats.MonthlyRevenue += price
		}
		for _, name := range b.ServiceNames() {
			serviceCounts[name]++
		}
	}

	if stats.CompletedCount > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.CompletedCount)
	}
	for name, count := range serviceCounts {
		if count > stats.TopServiceCount ||
			(count == stats.TopServiceCount && name < stats.TopService) {
			stats.TopService = name
			stats.TopServiceCount = count
		}
	}
	return stats
}

func bookingPrice(b *models.Booking, rates map[string]float64) float64 {
	sum := 0.0
	for _, name := range b.ServiceNames() {
		sum += rates[name]
	}
	if sum > 0 {
		return sum
	}
	return b.Amount
}

func completionTime(b *models.Booking) time.Time {
	if b.CompletedAt != nil {
		return *b.CompletedAt
	}
	parsed, err := time.Parse(utils.DateLayout, b.Date)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// RevenueService serves the dashboard stats.
type RevenueService interface {
	Stats(ctx context.Context, now time.Time) (Stats, error)
}

// DefaultRevenueService computes stats from live bookings and the catalog.
type DefaultRevenueService struct {
	Bookings bookingRepo.BookingRepository
	Catalog  catalog.CatalogService
}

func (s *DefaultRevenueService) Stats(ctx context.Context, now time.Time) (Stats, error) {
	completed, err := s.Bookings.GetCompleted(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load completed bookings: %w", err)
	}
	services, err := s.Catalog.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return Compute(completed, services, now), nil
}
