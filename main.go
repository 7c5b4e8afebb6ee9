package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonhq/config"
	"salonhq/cron"
	"salonhq/database"
	billingRepoPkg "salonhq/database/repository/billing"
	bookingRepoPkg "salonhq/database/repository/booking"
	catalogRepoPkg "salonhq/database/repository/catalog"
	clientRepoPkg "salonhq/database/repository/client"
	feedbackRepoPkg "salonhq/database/repository/feedback"
	productRepoPkg "salonhq/database/repository/product"
	staffRepoPkg "salonhq/database/repository/staff"
	"salonhq/handlers"
	"salonhq/middleware"
	"salonhq/routes"
	"salonhq/services/billing"
	"salonhq/services/booking"
	"salonhq/services/catalog"
	"salonhq/services/client"
	"salonhq/services/feedback"
	"salonhq/services/revenue"
	"salonhq/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	billingRepo := billingRepoPkg.NewMongoBillingRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := clientRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure client indexes: %v", err)
	}
	if err := catalogRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catalogRepo,
		Cache: utils.GetCacheClient(),
	}
	if err := catalogService.SeedDefaults(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed service catalog: %v", err)
	}

	clientService := &client.DefaultClientService{
		Repo: clientRepo,
	}

	billingService := &billing.DefaultBillingService{
		Repo:    billingRepo,
		Catalog: catalogService,
	}

	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Clients:  clientService,
		Bills:    billingService,
		Catalog:  catalogService,
		Reminder: reminderScheduler,
	}

	revenueService := &revenue.DefaultRevenueService{
		Bookings: bookingRepo,
		Catalog:  catalogService,
	}

	feedbackService := &feedback.DefaultFeedbackService{
		Repo: feedbackRepo,
	}

	// Start the reminder worker.
	cron.InitReminderWorker(cron.LogReminderSender{})

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	clientHandler := handlers.NewClientHandler(clientService)
	staffHandler := handlers.NewStaffHandler(staffRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(productRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	billingHandler := handlers.NewBillingHandler(billingService)
	dashboardHandler := &handlers.DashboardHandler{
		Bookings: bookingService,
		Clients:  clientService,
		Catalog:  catalogService,
		Feedback: feedbackService,
		Products: productRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public endpoints.
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		AvailabilityHandler:   handlers.AvailabilityHandler(bookingService),
		ListServicesHandler:   catalogHandler.ListServicesHandler,
		SubmitFeedbackHandler: feedbackHandler.SubmitFeedbackHandler,

		// Booking endpoints.
		ListBookingsHandler:    bookingHandler.ListBookingsHandler,
		GetBookingHandler:      bookingHandler.GetBookingHandler,
		ConfirmBookingHandler:  bookingHandler.ConfirmBookingHandler,
		CancelBookingHandler:   bookingHandler.CancelBookingHandler,
		CompleteBookingHandler: bookingHandler.CompleteBookingHandler,
		DeleteBookingHandler:   bookingHandler.DeleteBookingHandler,

		// Client endpoints.
		ListClientsHandler:       clientHandler.ListClientsHandler,
		ListMergedClientsHandler: clientHandler.ListMergedClientsHandler,
		GetClientHandler:         clientHandler.GetClientHandler,
		CreateClientHandler:      clientHandler.CreateClientHandler,
		UpdateClientHandler:      clientHandler.UpdateClientHandler,
		DeleteClientHandler:      clientHandler.DeleteClientHandler,

		// Staff endpoints.
		ListStaffHandler:          staffHandler.ListStaffHandler,
		CreateStaffHandler:        staffHandler.CreateStaffHandler,
		UpdateStaffBalanceHandler: staffHandler.UpdateStaffBalanceHandler,
		DeleteStaffHandler:        staffHandler.DeleteStaffHandler,

		// Catalog endpoints.
		GetServiceHandler:    catalogHandler.GetServiceHandler,
		CreateServiceHandler: catalogHandler.CreateServiceHandler,
		UpdateServiceHandler: catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,

		// Product endpoints.
		ListProductsHandler:          productHandler.ListProductsHandler,
		CreateProductHandler:         productHandler.CreateProductHandler,
		UpdateProductQuantityHandler: productHandler.UpdateProductQuantityHandler,
		DeleteProductHandler:         productHandler.DeleteProductHandler,

		// Feedback, billing, revenue and dashboard endpoints.
		ListFeedbackHandler:    feedbackHandler.ListFeedbackHandler,
		FeedbackSummaryHandler: feedbackHandler.FeedbackSummaryHandler,
		CreateBillHandler:      billingHandler.CreateBillHandler,
		ListBillsHandler:       billingHandler.ListBillsHandler,
		GetBillHandler:         billingHandler.GetBillHandler,
		MarkBillPaidHandler:    billingHandler.MarkBillPaidHandler,
		BillPDFHandler:         billingHandler.BillPDFHandler,
		RevenueStatsHandler:    handlers.RevenueStatsHandler(revenueService),
		DashboardStatsHandler:  dashboardHandler.DashboardStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
