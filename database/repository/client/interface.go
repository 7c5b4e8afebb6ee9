package clientRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	Create(ctx context.Context, client models.Client) (string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByContact(ctx context.Context, contact string) (*models.Client, error)
	Update(ctx context.Context, id string, client models.Client) error
	AppendHistory(ctx context.Context, id string, record models.ServiceRecord, allergies string) error
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}
