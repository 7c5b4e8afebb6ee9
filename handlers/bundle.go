package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public site endpoints
	CreateBookingHandler  gin.HandlerFunc
	AvailabilityHandler   gin.HandlerFunc
	ListServicesHandler   gin.HandlerFunc
	SubmitFeedbackHandler gin.HandlerFunc

	// Admin booking endpoints
	ListBookingsHandler    gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc
	DeleteBookingHandler   gin.HandlerFunc

	// Admin client endpoints
	ListClientsHandler       gin.HandlerFunc
	ListMergedClientsHandler gin.HandlerFunc
	GetClientHandler         gin.HandlerFunc
	CreateClientHandler      gin.HandlerFunc
	UpdateClientHandler      gin.HandlerFunc
	DeleteClientHandler      gin.HandlerFunc

	// Admin staff endpoints
	ListStaffHandler          gin.HandlerFunc
	CreateStaffHandler        gin.HandlerFunc
	UpdateStaffBalanceHandler gin.HandlerFunc
	DeleteStaffHandler        gin.HandlerFunc

	// Admin catalog endpoints
	GetServiceHandler    gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Admin product endpoints
	ListProductsHandler         gin.HandlerFunc
	CreateProductHandler        gin.HandlerFunc
	UpdateProductQuantityHandler gin.HandlerFunc
	DeleteProductHandler        gin.HandlerFunc

	// Admin feedback, billing, revenue, dashboard
	ListFeedbackHandler    gin.HandlerFunc
	FeedbackSummaryHandler gin.HandlerFunc
	CreateBillHandler      gin.HandlerFunc
	ListBillsHandler       gin.HandlerFunc
	GetBillHandler         gin.HandlerFunc
	MarkBillPaidHandler    gin.HandlerFunc
	BillPDFHandler         gin.HandlerFunc
	RevenueStatsHandler    gin.HandlerFunc
	DashboardStatsHandler  gin.HandlerFunc
}
