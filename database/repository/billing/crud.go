package billingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonhq/models"
)

func (r *mongoBillingRepo) Create(ctx context.Context, bill models.Bill) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}
	bill.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, bill); err != nil {
		return "", err
	}
	return bill.ID, nil
}

func (r *mongoBillingRepo) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bill models.Bill
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *mongoBillingRepo) GetAll(ctx context.Context) ([]models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *mongoBillingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
