package productRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (string, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo constructs a new MongoDB ProductRepository.
func NewMongoProductRepo() ProductRepository {
	return &mongoProductRepo{
		coll: database.DB().Collection("products"),
	}
}
