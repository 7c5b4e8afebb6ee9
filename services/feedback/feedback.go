package feedback

import (
	"context"
	"fmt"
	"math"

	feedbackRepo "salonhq/database/repository/feedback"
	"salonhq/models"
)

// FeedbackService accepts public feedback submissions and serves them, with
// the aggregate happiness index, to the admin panel.
type FeedbackService interface {
	Submit(ctx context.Context, f models.Feedback) (string, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Summary(ctx context.Context) (SummaryStats, error)
}

// SummaryStats aggregates all feedback into the dashboard numbers.
type SummaryStats struct {
	Count          int     `json:"count"`
	AverageRating  float64 `json:"averageRating"`
	HappinessIndex int     `json:"happinessIndex"` // 0..100
}

// HappinessIndex maps an average star rating to a 0..100 percentage.
func HappinessIndex(avgRating float64) int {
	if avgRating <= 0 {
		return 0
	}
	return int(math.Round(avgRating / 5 * 100))
}

// DefaultFeedbackService is the production FeedbackService.
type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}

func (s *DefaultFeedbackService) Submit(ctx context.Context, f models.Feedback) (string, error) {
	if f.Name == "" {
		return "", fmt.Errorf("feedback requires a name")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return "", fmt.Errorf("rating must be between 1 and 5")
	}
	return s.Repo.Create(ctx, f)
}

func (s *DefaultFeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultFeedbackService) Summary(ctx context.Context) (SummaryStats, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return SummaryStats{}, err
	}
	stats := SummaryStats{Count: len(all)}
	if len(all) == 0 {
		return stats, nil
	}
	sum := 0
	for _, f := range all {
		sum += f.Rating
	}
	stats.AverageRating = float64(sum) / float64(len(all))
	stats.HappinessIndex = HappinessIndex(stats.AverageRating)
	return stats, nil
}
