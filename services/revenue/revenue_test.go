package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salonhq/models"
)

var pricedServices = []models.Service{
	{Name: "Hydra Facial", SecretPrice: 2000},
	{Name: "Hair Spa", SecretPrice: 1200},
	{Name: "Men's Haircut", SecretPrice: 400},
}

func completed(services []string, amount float64, at time.Time) models.Booking {
	return models.Booking{
		Status:      models.BookingStatusCompleted,
		Services:    services,
		Amount:      amount,
		Date:        at.Format("2006-01-02"),
		CompletedAt: &at,
	}
}

func TestComputeWindows(t *testing.T) {
	now := time.Date(2025, time.June, 30, 18, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		completed([]string{"Hydra Facial"}, 0, now.Add(-2*time.Hour)),              // today
		completed([]string{"Hair Spa"}, 0, now.AddDate(0, 0, -3)),                 // this week
		completed([]string{"Men's Haircut"}, 0, now.AddDate(0, 0, -20)),           // this month
		completed([]string{"Hydra Facial", "Hair Spa"}, 0, now.AddDate(0, 0, -60)), // older
	}

	stats := Compute(bookings, pricedServices, now)

	assert.InDelta(t, 2000+1200+400+3200, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 2000, stats.DailyRevenue, 0.001)
	assert.InDelta(t, 3200, stats.WeeklyRevenue, 0.001)
	assert.InDelta(t, 3600, stats.MonthlyRevenue, 0.001)
	assert.Equal(t, 4, stats.CompletedCount)
	assert.InDelta(t, 6800.0/4, stats.AverageOrderValue, 0.001)
}

func TestComputeFallsBackToAmount(t *testing.T) {
	now := time.Date(2025, time.June, 30, 18, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		completed([]string{"Mystery Package"}, 999, now), // not in catalog
	}

	stats := Compute(bookings, pricedServices, now)
	assert.InDelta(t, 999, stats.TotalRevenue, 0.001)
}

func TestComputeIgnoresActiveBookings(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{Status: models.BookingStatusPending, Services: []string{"Hair Spa"}, Amount: 1200},
		{Status: models.BookingStatusCancelled, Services: []string{"Hair Spa"}, Amount: 1200},
	}

	stats := Compute(bookings, pricedServices, now)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.CompletedCount)
	assert.Zero(t, stats.AverageOrderValue)
}

func TestComputeTopService(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		completed([]string{"Hair Spa"}, 0, now),
		completed([]string{"Hair Spa", "Men's Haircut"}, 0, now),
		completed([]string{"Men's Haircut"}, 0, now),
		completed([]string{"Hair Spa"}, 0, now),
	}

	stats := Compute(bookings, pricedServices, now)
	assert.Equal(t, "Hair Spa", stats.TopService)
	assert.Equal(t, 3, stats.TopServiceCount)
}

func TestComputeLegacyServiceField(t *testing.T) {
	now := time.Now()
	at := now
	bookings := []models.Booking{
		{Status: models.BookingStatusCompleted, Service: "Men's Haircut", Date: now.Format("2006-01-02"), CompletedAt: &at},
	}

	stats := Compute(bookings, pricedServices, now)
	assert.InDelta(t, 400, stats.TotalRevenue, 0.001)
	assert.Equal(t, "Men's Haircut", stats.TopService)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, pricedServices, time.Now())
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AverageOrderValue)
	assert.Empty(t, stats.TopService)
}
