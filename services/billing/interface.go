package billing

import (
	"context"

	"salonhq/models"
)

// BillingService creates and serves bills, both the manual admin flow and
// the automatic bill issued when a booking is completed.
type BillingService interface {
	CreateBill(ctx context.Context, bill models.Bill) (string, error)
	Get(ctx context.Context, id string) (*models.Bill, error)
	List(ctx context.Context) ([]models.Bill, error)
	MarkPaid(ctx context.Context, id string) error

	// IssueForBooking builds and stores the bill for a completed booking.
	// One line item per service, rated from the catalog's internal price,
	// with the entered amount as the authoritative total.
	IssueForBooking(ctx context.Context, b *models.Booking, amount float64, paymentMode string) (*models.Bill, error)

	// RenderPDF renders the stored bill as a printable PDF document.
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}
