package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	productRepo "salonhq/database/repository/product"
	"salonhq/models"
	"salonhq/services/booking"
	"salonhq/services/catalog"
	"salonhq/services/client"
	"salonhq/services/feedback"
	"salonhq/utils"
)

// DashboardHandler assembles the admin landing-page counters in one call.
type DashboardHandler struct {
	Bookings booking.BookingService
	Clients  client.ClientService
	Catalog  catalog.CatalogService
	Feedback feedback.FeedbackService
	Products productRepo.ProductRepository
}

// DashboardStats is the admin landing-page payload.
type DashboardStats struct {
	TotalBookings     int              `json:"totalBookings"`
	CompletedBookings int              `json:"completedBookings"`
	TodayBookings     int              `json:"todayBookings"`
	PendingCount      int              `json:"pendingCount"`
	ConfirmedCount    int              `json:"confirmedCount"`
	ClientCount       int              `json:"clientCount"`
	ServiceCount      int              `json:"serviceCount"`
	FeedbackCount     int              `json:"feedbackCount"`
	HappinessIndex    int              `json:"happinessIndex"`
	LowStock          []models.Product `json:"lowStock"`
}

// DashboardStatsHandler returns the workload counters, the merged client
// count, the happiness index and any products running low.
func (h *DashboardHandler) DashboardStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	var stats DashboardStats

	all, err := h.Bookings.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	today := time.Now().Format(utils.DateLayout)
	stats.TotalBookings = len(all)
	for _, b := range all {
		if b.Status == models.BookingStatusCompleted {
			stats.CompletedBookings++
		}
		if b.Date != today {
			continue
		}
		stats.TodayBookings++
		switch b.Status {
		case models.BookingStatusPending:
			stats.PendingCount++
		case models.BookingStatusConfirmed:
			stats.ConfirmedCount++
		}
	}

	merged, err := h.Clients.ListMerged(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load clients", err.Error())
		return
	}
	stats.ClientCount = len(merged)

	services, err := h.Catalog.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	stats.ServiceCount = len(services)

	summary, err := h.Feedback.Summary(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load feedback summary", err.Error())
		return
	}
	stats.FeedbackCount = summary.Count
	stats.HappinessIndex = summary.HappinessIndex

	products, err := h.Products.GetAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load inventory", err.Error())
		return
	}
	stats.LowStock = []models.Product{}
	for i := range products {
		if products[i].LowStock() {
			stats.LowStock = append(stats.LowStock, products[i])
		}
	}

	c.JSON(http.StatusOK, stats)
}
