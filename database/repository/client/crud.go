package clientRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonhq/models"
)

func (r *mongoClientRepo) Create(ctx context.Context, client models.Client) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return "", err
	}
	return client.ID, nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetByContact looks up a client by the exact stored contact string. Callers
// needing tolerance for formatting differences fall back to a normalized
// scan over GetAll.
func (r *mongoClientRepo) GetByContact(ctx context.Context, contact string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"contact": contact}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, id string, client models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      client.Name,
		"contact":   client.Contact,
		"allergies": client.Allergies,
		"updatedAt": time.Now(),
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

// AppendHistory pushes one completed-visit record onto the client's history.
// A non-empty allergies string also refreshes the stored allergies note.
func (r *mongoClientRepo) AppendHistory(ctx context.Context, id string, record models.ServiceRecord, allergies string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if allergies != "" {
		set["allergies"] = allergies
	}
	update := bson.M{
		"$push": bson.M{"serviceHistory": record},
		"$set":  set,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClientRepo) DeleteByID(ctx context.Context, id string) error {
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
