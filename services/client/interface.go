package client

import (
	"context"

	"salonhq/models"
)

// ClientService manages customer records and serves the merged admin view.
type ClientService interface {
	Create(ctx context.Context, client models.Client) (string, error)
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	ListMerged(ctx context.Context) ([]models.MergedClient, error)
	Update(ctx context.Context, id string, client models.Client) error
	Delete(ctx context.Context, id string) error

	// RecordVisit upserts a completed visit into the client's history,
	// matching by contact (exact first, then normalized) and creating a new
	// record when no match exists. Returns the client id written to.
	RecordVisit(ctx context.Context, name, contact, allergies string, record models.ServiceRecord) (string, error)
}
