package bookingRepo

import (
	"context"
	"time"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetCompleted(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Complete(ctx context.Context, id, completedBy string, amount float64, paymentMode string, at time.Time) error
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
