package feedbackRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonhq/models"
)

func (r *mongoFeedbackRepo) Create(ctx context.Context, feedback models.Feedback) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	feedback.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return "", err
	}
	return feedback.ID, nil
}

func (r *mongoFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
