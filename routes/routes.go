package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonhq/config"
	"salonhq/handlers"
)

// RegisterPublicRoutes registers the endpoints the customer-facing site uses:
// the service menu, slot availability, booking creation and feedback.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/availability", hb.AvailabilityHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
		api.POST("/feedback", hb.SubmitFeedbackHandler)
	}
}

// RegisterAdminRoutes registers the admin panel endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/bookings", hb.ListBookingsHandler)
		admin.GET("/bookings/:id", hb.GetBookingHandler)
		admin.PUT("/bookings/:id/confirm", hb.ConfirmBookingHandler)
		admin.PUT("/bookings/:id/cancel", hb.CancelBookingHandler)
		admin.PUT("/bookings/:id/complete", hb.CompleteBookingHandler)
		admin.DELETE("/bookings/:id", hb.DeleteBookingHandler)

		admin.GET("/clients", hb.ListClientsHandler)
		admin.GET("/clients/merged", hb.ListMergedClientsHandler)
		admin.GET("/clients/:id", hb.GetClientHandler)
		admin.POST("/clients", hb.CreateClientHandler)
		admin.PUT("/clients/:id", hb.UpdateClientHandler)
		admin.DELETE("/clients/:id", hb.DeleteClientHandler)

		admin.GET("/staff", hb.ListStaffHandler)
		admin.POST("/staff", hb.CreateStaffHandler)
		admin.PUT("/staff/:id/balance", hb.UpdateStaffBalanceHandler)
		admin.DELETE("/staff/:id", hb.DeleteStaffHandler)

		admin.GET("/services/:id", hb.GetServiceHandler)
		admin.POST("/services", hb.CreateServiceHandler)
		admin.PUT("/services/:id", hb.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.DeleteServiceHandler)

		admin.GET("/products", hb.ListProductsHandler)
		admin.POST("/products", hb.CreateProductHandler)
		admin.PUT("/products/:id/quantity", hb.UpdateProductQuantityHandler)
		admin.DELETE("/products/:id", hb.DeleteProductHandler)

		admin.GET("/feedback", hb.ListFeedbackHandler)
		admin.GET("/feedback/summary", hb.FeedbackSummaryHandler)

		admin.POST("/billing", hb.CreateBillHandler)
		admin.GET("/billing", hb.ListBillsHandler)
		admin.GET("/billing/:id", hb.GetBillHandler)
		admin.PUT("/billing/:id/paid", hb.MarkBillPaidHandler)
		admin.GET("/billing/:id/pdf", hb.BillPDFHandler)

		admin.GET("/revenue", hb.RevenueStatsHandler)
		admin.GET("/stats", hb.DashboardStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "salon": config.AppConfig.SalonName})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
