package catalogRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository interface {
	Create(ctx context.Context, service models.Service) (string, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id string, service models.Service) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	return &mongoCatalogRepo{
		coll: database.DB().Collection("services"),
	}
}
