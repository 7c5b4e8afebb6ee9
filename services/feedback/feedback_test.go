package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhq/models"
)

type fakeFeedbackRepo struct {
	stored []models.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb models.Feedback) (string, error) {
	f.stored = append(f.stored, fb)
	return "fb-1", nil
}

func (f *fakeFeedbackRepo) GetAll(_ context.Context) ([]models.Feedback, error) {
	return f.stored, nil
}

func TestSubmitValidation(t *testing.T) {
	svc := &DefaultFeedbackService{Repo: &fakeFeedbackRepo{}}
	ctx := context.Background()

	_, err := svc.Submit(ctx, models.Feedback{Rating: 5})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, models.Feedback{Name: "Priya", Rating: 0})
	assert.Error(t, err)
	_, err = svc.Submit(ctx, models.Feedback{Name: "Priya", Rating: 6})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, models.Feedback{Name: "Priya", Rating: 4})
	assert.NoError(t, err)
}

func TestHappinessIndex(t *testing.T) {
	assert.Equal(t, 100, HappinessIndex(5))
	assert.Equal(t, 80, HappinessIndex(4))
	assert.Equal(t, 90, HappinessIndex(4.5))
	assert.Equal(t, 87, HappinessIndex(4.33))
	assert.Equal(t, 0, HappinessIndex(0))
}

func TestSummary(t *testing.T) {
	repo := &fakeFeedbackRepo{stored: []models.Feedback{
		{Name: "a", Rating: 5},
		{Name: "b", Rating: 4},
		{Name: "c", Rating: 4},
	}}
	svc := &DefaultFeedbackService{Repo: repo}

	stats, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 13.0/3, stats.AverageRating, 0.001)
	assert.Equal(t, 87, stats.HappinessIndex)
}

func TestSummaryEmpty(t *testing.T) {
	svc := &DefaultFeedbackService{Repo: &fakeFeedbackRepo{}}
	stats, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.HappinessIndex)
}
