package staffRepo

import (
	"context"

	"salonhq/database"
	"salonhq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, member models.Staff) (string, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetAll(ctx context.Context) ([]models.Staff, error)
	UpdateBalance(ctx context.Context, id string, delta float64) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}
