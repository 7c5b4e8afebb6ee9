package catalogRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonhq/models"
)

func (r *mongoCatalogRepo) Create(ctx context.Context, service models.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return "", err
	}
	return service.ID, nil
}

func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *mongoCatalogRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoCatalogRepo) Update(ctx context.Context, id string, service models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         service.Name,
		"image":        service.Image,
		"priceRange":   service.PriceRange,
		"secretPrice":  service.SecretPrice,
		"timeRequired": service.TimeRequired,
		"description":  service.Description,
		"updatedAt":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) DeleteByID(ctx context.Context, id string) error {
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

func (r *mongoCatalogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
