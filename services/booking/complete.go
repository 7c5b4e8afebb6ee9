package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonhq/config"
	"salonhq/models"
	"salonhq/services/billing"
	"salonhq/utils"
)

// Complete marks a booking done and runs the checkout side effects in order:
// the visit lands in the client's history, a bill is issued, and the caller
// gets a ready-to-send WhatsApp link for it. Failures after the status write
// are reported but do not roll the completion back; the front desk can re-run
// billing from the admin panel.
func (s *DefaultBookingService) Complete(ctx context.Context, id string, input CompletionInput) (*CompletionResult, error) {
	if input.CompletedBy == "" {
		return nil, fmt.Errorf("%w: completedBy is required", ErrInvalidInput)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
	}

	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Terminal() {
		return nil, fmt.Errorf("%w: cannot complete a %s booking", ErrInvalidTransition, b.Status)
	}

	completedAt := time.Now()
	if err := s.Repo.Complete(ctx, id, input.CompletedBy, input.Amount, input.PaymentMode, completedAt); err != nil {
		return nil, fmt.Errorf("failed to complete booking %s: %w", id, err)
	}
	b.Status = models.BookingStatusCompleted
	b.CompletedBy = input.CompletedBy
	b.Amount = input.Amount
	b.PaymentMode = input.PaymentMode
	b.CompletedAt = &completedAt

	result := &CompletionResult{Booking: b}
	log := utils.GetLogger()

	clientID, err := s.Clients.RecordVisit(ctx, b.Name, b.Phone, b.Allergies, models.ServiceRecord{
		Date:        b.Date,
		Services:    b.ServiceNames(),
		Staff:       input.CompletedBy,
		Amount:      input.Amount,
		PaymentMode: input.PaymentMode,
		CompletedAt: completedAt,
	})
	if err != nil {
		log.Error("completed booking but failed to record client visit",
			zap.String("bookingID", id), zap.Error(err))
	} else {
		result.ClientID = clientID
	}

	bill, err := s.Bills.IssueForBooking(ctx, b, input.Amount, input.PaymentMode)
	if err != nil {
		log.Error("completed booking but failed to issue bill",
			zap.String("bookingID", id), zap.Error(err))
		return result, nil
	}
	result.BillID = bill.ID
	result.WhatsAppLink = billing.BillMessageLink(*bill, config.AppConfig.BillBaseURL)
	return result, nil
}
