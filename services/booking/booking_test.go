package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhq/models"
	"salonhq/services/availability"
)

// fakeBookingRepo keeps bookings in a map, enough to drive the service layer.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	f.nextID++
	b.ID = fmt.Sprintf("b%03d", f.nextID)
	f.bookings[b.ID] = &b
	return b.ID, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	all, _ := f.GetByDate(ctx, date)
	var out []models.Booking
	for _, b := range all {
		if b.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetCompleted(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusCompleted {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id, completedBy string, amount float64, paymentMode string, at time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.Status = models.BookingStatusCompleted
	b.CompletedBy = completedBy
	b.Amount = amount
	b.PaymentMode = paymentMode
	b.CompletedAt = &at
	return nil
}

func (f *fakeBookingRepo) DeleteByID(_ context.Context, id string) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

// fakeCatalog serves a fixed duration table.
type fakeCatalog struct {
	durations map[string]availability.Duration
}

func (f *fakeCatalog) List(context.Context) ([]models.Service, error)          { return nil, nil }
func (f *fakeCatalog) Get(context.Context, string) (*models.Service, error)    { return nil, nil }
func (f *fakeCatalog) Create(context.Context, models.Service) (string, error)  { return "", nil }
func (f *fakeCatalog) Update(context.Context, string, models.Service) error    { return nil }
func (f *fakeCatalog) Delete(context.Context, string) error                    { return nil }
func (f *fakeCatalog) SeedDefaults(context.Context) error                      { return nil }
func (f *fakeCatalog) Durations(context.Context) (map[string]availability.Duration, error) {
	return f.durations, nil
}

// fakeClients records RecordVisit calls.
type fakeClients struct {
	visits []models.ServiceRecord
}

func (f *fakeClients) Create(context.Context, models.Client) (string, error)     { return "", nil }
func (f *fakeClients) Get(context.Context, string) (*models.Client, error)       { return nil, nil }
func (f *fakeClients) List(context.Context) ([]models.Client, error)             { return nil, nil }
func (f *fakeClients) ListMerged(context.Context) ([]models.MergedClient, error) { return nil, nil }
func (f *fakeClients) Update(context.Context, string, models.Client) error       { return nil }
func (f *fakeClients) Delete(context.Context, string) error                      { return nil }
func (f *fakeClients) RecordVisit(_ context.Context, _, _, _ string, record models.ServiceRecord) (string, error) {
	f.visits = append(f.visits, record)
	return "client-1", nil
}

// fakeBills issues bills without storage.
type fakeBills struct {
	issued []models.Bill
}

func (f *fakeBills) CreateBill(context.Context, models.Bill) (string, error) { return "", nil }
func (f *fakeBills) Get(context.Context, string) (*models.Bill, error)       { return nil, nil }
func (f *fakeBills) List(context.Context) ([]models.Bill, error)             { return nil, nil }
func (f *fakeBills) MarkPaid(context.Context, string) error                  { return nil }
func (f *fakeBills) RenderPDF(context.Context, string) ([]byte, error)       { return nil, nil }
func (f *fakeBills) IssueForBooking(_ context.Context, b *models.Booking, amount float64, paymentMode string) (*models.Bill, error) {
	bill := models.Bill{
		ID:            "bill-1",
		BookingID:     b.ID,
		ClientName:    b.Name,
		ClientContact: b.Phone,
		TotalAmount:   amount,
		PaymentMode:   paymentMode,
	}
	f.issued = append(f.issued, bill)
	return &bill, nil
}

// fakeReminder records enqueued bookings.
type fakeReminder struct {
	enqueued []models.Booking
	fail     bool
}

func (f *fakeReminder) EnqueueReminder(_ context.Context, b models.Booking) error {
	if f.fail {
		return errors.New("queue down")
	}
	f.enqueued = append(f.enqueued, b)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeClients, *fakeBills, *fakeReminder) {
	repo := newFakeBookingRepo()
	clients := &fakeClients{}
	bills := &fakeBills{}
	reminder := &fakeReminder{}
	svc := &DefaultBookingService{
		Repo:    repo,
		Clients: clients,
		Bills:   bills,
		Catalog: &fakeCatalog{durations: map[string]availability.Duration{
			"Men's Haircut": {MinMinutes: 20, MaxMinutes: 30},
			"Hair Spa":      {MinMinutes: 45, MaxMinutes: 60},
		}},
		Reminder: reminder,
	}
	return svc, repo, clients, bills, reminder
}

func validBooking() models.Booking {
	return models.Booking{
		Name:     "Priya",
		Phone:    "9876543210",
		Services: []string{"Men's Haircut"},
		Date:     "2030-06-15",
		Time:     "10:00",
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	b := validBooking()
	b.Name = ""
	_, err := svc.CreateBooking(ctx, b)
	assert.ErrorIs(t, err, ErrInvalidInput)

	b = validBooking()
	b.Services = nil
	_, err = svc.CreateBooking(ctx, b)
	assert.ErrorIs(t, err, ErrNoServices)

	b = validBooking()
	b.Date = "15/06/2030"
	_, err = svc.CreateBooking(ctx, b)
	assert.ErrorIs(t, err, ErrInvalidInput)

	b = validBooking()
	b.Time = "10 am"
	_, err = svc.CreateBooking(ctx, b)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBookingStoresPending(t *testing.T) {
	svc, repo, _, _, _ := newTestService()
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestCreateBookingLegacySingleServiceField(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	b := validBooking()
	b.Services = nil
	b.Service = "Hair Spa"
	_, err := svc.CreateBooking(context.Background(), b)
	assert.NoError(t, err)
}

func TestCreateBookingRejectsFullSlot(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	// Two chairs: the first two bookings at 10:00 fit, the third does not.
	_, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, validBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBookingCancelledDoesNotHoldChair(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	id1, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, id1))

	_, err = svc.CreateBooking(ctx, validBooking())
	assert.NoError(t, err)
}

func TestConfirmSchedulesReminder(t *testing.T) {
	svc, _, _, _, reminder := newTestService()
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, id))
	require.Len(t, reminder.enqueued, 1)
	assert.Equal(t, id, reminder.enqueued[0].ID)

	// Confirming twice is an invalid transition.
	assert.ErrorIs(t, svc.Confirm(ctx, id), ErrInvalidTransition)
}

func TestConfirmSurvivesReminderFailure(t *testing.T) {
	svc, repo, _, _, reminder := newTestService()
	reminder.fail = true
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)
	require.NoError(t, svc.Confirm(ctx, id))

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
}

func TestCancelTerminalBookingRejected(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, id))

	assert.ErrorIs(t, svc.Cancel(ctx, id), ErrInvalidTransition)
}

func TestCompleteRunsCheckoutSideEffects(t *testing.T) {
	svc, repo, clients, bills, _ := newTestService()
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	result, err := svc.Complete(ctx, id, CompletionInput{
		CompletedBy: "Anita",
		Amount:      500,
		PaymentMode: "upi",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, stored.Status)
	assert.Equal(t, "Anita", stored.CompletedBy)
	require.NotNil(t, stored.CompletedAt)

	require.Len(t, clients.visits, 1)
	assert.Equal(t, []string{"Men's Haircut"}, clients.visits[0].Services)
	assert.Equal(t, 500.0, clients.visits[0].Amount)

	require.Len(t, bills.issued, 1)
	assert.Equal(t, "bill-1", result.BillID)
	assert.Equal(t, "client-1", result.ClientID)
	assert.Contains(t, result.WhatsAppLink, "https://wa.me/9876543210?text=")
}

func TestCompleteValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, validBooking())
	require.NoError(t, err)

	_, err = svc.Complete(ctx, id, CompletionInput{Amount: 500})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Complete(ctx, id, CompletionInput{CompletedBy: "Anita", Amount: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Completing an already completed booking is rejected.
	_, err = svc.Complete(ctx, id, CompletionInput{CompletedBy: "Anita", Amount: 500})
	require.NoError(t, err)
	_, err = svc.Complete(ctx, id, CompletionInput{CompletedBy: "Anita", Amount: 500})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAvailabilityReflectsBookingLoad(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	now := time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)

	slots, err := svc.Availability(ctx, "2030-06-15", []string{"Men's Haircut"}, now)
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")

	// Fill both chairs at 10:00 with hour-long default reservations.
	long := validBooking()
	long.Services = []string{"Unknown Treatment"}
	_, err = svc.CreateBooking(ctx, long)
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, long)
	require.NoError(t, err)

	slots, err = svc.Availability(ctx, "2030-06-15", []string{"Men's Haircut"}, now)
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
}

func TestAvailabilityValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Availability(ctx, "not-a-date", []string{"Hair Spa"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Availability(ctx, "2030-06-15", nil, time.Now())
	assert.ErrorIs(t, err, ErrNoServices)
}
