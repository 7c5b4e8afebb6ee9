package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonhq/models"
)

func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

// GetActiveByDate returns the bookings that occupy chair capacity on a date:
// status pending or confirmed. This is the snapshot the availability engine
// consumes and the set the write-time capacity check counts against.
func (r *mongoBookingRepo) GetActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   date,
		"status": bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed}},
	}
	return r.find(ctx, filter)
}

func (r *mongoBookingRepo) GetCompleted(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": models.BookingStatusCompleted})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
