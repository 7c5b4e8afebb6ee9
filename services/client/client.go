package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonhq/config"
	clientRepo "salonhq/database/repository/client"
	"salonhq/models"
	"salonhq/utils"
)

// DefaultClientService is the production ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) Create(ctx context.Context, c models.Client) (string, error) {
	if c.Name == "" || c.Contact == "" {
		return "", fmt.Errorf("client name and contact are required")
	}
	return s.Repo.Create(ctx, c)
}

func (s *DefaultClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.Repo.GetAll(ctx)
}

// ListMerged returns the deduplicated admin view, one entry per normalized
// phone number.
func (s *DefaultClientService) ListMerged(ctx context.Context) ([]models.MergedClient, error) {
	clients, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return MergeByPhone(clients, config.AppConfig.DefaultCountry), nil
}

func (s *DefaultClientService) Update(ctx context.Context, id string, c models.Client) error {
	return s.Repo.Update(ctx, id, c)
}

func (s *DefaultClientService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}

// RecordVisit finds the client record for the given contact and appends the
// visit. Exact contact match wins; failing that any record whose normalized
// phone matches is used, so "+91 98765 43210" and "9876543210" land in the
// same history. With no match at all a fresh client record is created.
func (s *DefaultClientService) RecordVisit(ctx context.Context, name, contact, allergies string, record models.ServiceRecord) (string, error) {
	existing, err := s.Repo.GetByContact(ctx, contact)
	if err == nil && existing != nil {
		if appendErr := s.Repo.AppendHistory(ctx, existing.ID, record, allergies); appendErr != nil {
			return "", appendErr
		}
		return existing.ID, nil
	}

	country := config.AppConfig.DefaultCountry
	normalized := NormalizePhone(contact, country)
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to scan clients for %q: %w", contact, err)
	}
	for _, c := range all {
		if NormalizePhone(c.Contact, country) == normalized {
			if appendErr := s.Repo.AppendHistory(ctx, c.ID, record, allergies); appendErr != nil {
				return "", appendErr
			}
			return c.ID, nil
		}
	}

	id, err := s.Repo.Create(ctx, models.Client{
		Name:           name,
		Contact:        contact,
		Allergies:      allergies,
		ServiceHistory: []models.ServiceRecord{record},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		return "", err
	}
	utils.GetLogger().Info("created client record on first completed visit",
		zap.String("clientID", id), zap.String("contact", contact))
	return id, nil
}
