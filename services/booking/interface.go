package booking

import (
	"context"
	"time"

	"salonhq/models"
)

// BookingService handles the appointment lifecycle: public creation with a
// capacity check, admin status transitions, completion with client history
// and billing side effects, and the public availability query.
type BookingService interface {
	CreateBooking(ctx context.Context, b models.Booking) (string, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, input CompletionInput) (*CompletionResult, error)
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, date string, services []string, now time.Time) ([]string, error)
}

// CompletionInput is what the front desk enters when a service finishes.
type CompletionInput struct {
	CompletedBy string  `json:"completedBy"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
}

// CompletionResult reports the side effects of completing a booking.
type CompletionResult struct {
	Booking      *models.Booking `json:"booking"`
	ClientID     string          `json:"clientId"`
	BillID       string          `json:"billId"`
	WhatsAppLink string          `json:"whatsappLink"`
}

// ReminderEnqueuer schedules an appointment reminder for delivery before the
// booked time. Implemented by the asynq-backed scheduler in cron.
type ReminderEnqueuer interface {
	EnqueueReminder(ctx context.Context, b models.Booking) error
}
