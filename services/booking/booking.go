package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonhq/config"
	bookingRepo "salonhq/database/repository/booking"
	"salonhq/models"
	"salonhq/services/availability"
	"salonhq/services/billing"
	"salonhq/services/catalog"
	"salonhq/services/client"
	"salonhq/utils"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Clients  client.ClientService
	Bills    billing.BillingService
	Catalog  catalog.CatalogService
	Reminder ReminderEnqueuer
}

// CreateBooking validates a new appointment request and stores it as pending.
// Chair capacity is re-checked here against the bookings actually on disk:
// the availability list the customer picked from is advisory, and two
// customers can race for the last chair in the same slot.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, b models.Booking) (string, error) {
	if b.Name == "" || b.Phone == "" {
		return "", fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}
	services := b.ServiceNames()
	if len(services) == 0 {
		return "", ErrNoServices
	}
	if _, err := time.Parse(utils.DateLayout, b.Date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	start, ok := availability.ParseMinutes(b.Time)
	if !ok {
		return "", fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	durations, err := s.Catalog.Durations(ctx)
	if err != nil {
		return "", err
	}
	reservations, err := s.activeReservations(ctx, b.Date)
	if err != nil {
		return "", err
	}
	duration := availability.RequestedDuration(services, durations)
	if availability.CountConflicts(start, duration, reservations, durations) >= maxChairs() {
		return "", ErrSlotTaken
	}

	b.Status = models.BookingStatusPending
	id, err := s.Repo.Create(ctx, b)
	if err != nil {
		return "", fmt.Errorf("failed to store booking: %w", err)
	}
	utils.GetLogger().Info("booking created",
		zap.String("bookingID", id), zap.String("date", b.Date), zap.String("time", b.Time))
	return id, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultBookingService) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.Repo.GetByDate(ctx, date)
}

// Confirm moves a pending booking to confirmed and schedules its reminder.
func (s *DefaultBookingService) Confirm(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status != models.BookingStatusPending {
		return fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, b.Status)
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusConfirmed); err != nil {
		return err
	}

	if s.Reminder != nil {
		if err := s.Reminder.EnqueueReminder(ctx, *b); err != nil {
			// The confirmation already happened; a missed reminder is not
			// worth failing the request over.
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", id), zap.Error(err))
		}
	}
	return nil
}

// Cancel releases the chair held by a pending or confirmed booking.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Terminal() {
		return fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, b.Status)
	}
	return s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}

// activeReservations loads the pending/confirmed bookings on a date as
// engine reservations. Bookings whose stored time no longer parses are
// skipped; they cannot be placed on the day grid.
func (s *DefaultBookingService) activeReservations(ctx context.Context, date string) ([]availability.Reservation, error) {
	active, err := s.Repo.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	reservations := make([]availability.Reservation, 0, len(active))
	for _, b := range active {
		start, ok := availability.ParseMinutes(b.Time)
		if !ok {
			utils.GetLogger().Warn("skipping booking with unparseable time",
				zap.String("bookingID", b.ID), zap.String("time", b.Time))
			continue
		}
		reservations = append(reservations, availability.Reservation{
			StartMinutes: start,
			Services:     b.ServiceNames(),
		})
	}
	return reservations, nil
}

func maxChairs() int {
	if config.AppConfig.MaxChairs > 0 {
		return config.AppConfig.MaxChairs
	}
	return availability.DefaultMaxConcurrent
}
