package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "salonhq/database/repository/catalog"
	"salonhq/models"
	"salonhq/services/availability"
	"salonhq/utils"
)

// DefaultCatalogService is the production CatalogService backed by MongoDB
// with a short-lived Redis snapshot. The availability engine reads durations
// on every public slot query, so the snapshot keeps those reads off the
// database; writes invalidate it.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Service, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	services, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service catalog: %w", err)
	}
	s.toCache(ctx, services)
	return services, nil
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) Create(ctx context.Context, service models.Service) (string, error) {
	if service.Name == "" {
		return "", fmt.Errorf("service name is required")
	}
	id, err := s.Repo.Create(ctx, service)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *DefaultCatalogService) Update(ctx context.Context, id string, service models.Service) error {
	if err := s.Repo.Update(ctx, id, service); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Durations returns the parsed duration lookup for the current catalog. A
// catalog that fails to load yields an empty map rather than an error so the
// engine can still answer with fallback durations.
func (s *DefaultCatalogService) Durations(ctx context.Context) (map[string]availability.Duration, error) {
	services, err := s.List(ctx)
	if err != nil {
		utils.GetLogger().Warn("catalog unavailable, using fallback durations", zap.Error(err))
		return map[string]availability.Duration{}, nil
	}

	durations := make(map[string]availability.Duration, len(services))
	for _, svc := range services {
		durations[svc.Name] = ParseTimeRequired(svc.TimeRequired)
	}
	return durations, nil
}

func (s *DefaultCatalogService) fromCache(ctx context.Context) ([]models.Service, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, utils.CatalogCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (s *DefaultCatalogService) toCache(ctx context.Context, services []models.Service) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.CatalogCacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache service catalog", zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.CatalogCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}
