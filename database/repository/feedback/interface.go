package feedbackRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback models.Feedback) (string, error)
	GetAll(ctx context.Context) ([]models.Feedback, error)
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo constructs a new MongoDB FeedbackRepository.
func NewMongoFeedbackRepo() FeedbackRepository {
	return &mongoFeedbackRepo{
		coll: database.DB().Collection("feedbacks"),
	}
}
