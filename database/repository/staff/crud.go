package staffRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonhq/models"
)

func (r *mongoStaffRepo) Create(ctx context.Context, member models.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return "", err
	}
	return member.ID, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *mongoStaffRepo) GetAll(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.Staff
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoStaffRepo) UpdateBalance(ctx context.Context, id string, delta float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"balance": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStaffRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
