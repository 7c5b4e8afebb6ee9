package billingRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BillingRepository interface {
	Create(ctx context.Context, bill models.Bill) (string, error)
	GetByID(ctx context.Context, id string) (*models.Bill, error)
	GetAll(ctx context.Context) ([]models.Bill, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBillingRepo struct {
	coll *mongo.Collection
}

// NewMongoBillingRepo constructs a new MongoDB BillingRepository.
func NewMongoBillingRepo() BillingRepository {
	return &mongoBillingRepo{
		coll: database.DB().Collection("billing"),
	}
}
