package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhq/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+91 98765 43210": "9876543210",
		"9876543210":      "9876543210",
		"98765-43210":     "9876543210",
		" +919876543210 ": "9876543210",
		"0123 456":        "0123456",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in, "+91"), "input %q", in)
	}
}

func TestMergeGroupsByNormalizedPhone(t *testing.T) {
	clients := []models.Client{
		{ID: "a", Name: "Priya", Contact: "+91 98765 43210", CreatedAt: day(1), UpdatedAt: day(1)},
		{ID: "b", Name: "Priya Sharma", Contact: "9876543210", CreatedAt: day(5), UpdatedAt: day(5)},
		{ID: "c", Name: "Rohan", Contact: "9876543211", CreatedAt: day(3), UpdatedAt: day(3)},
	}

	merged := MergeByPhone(clients, "+91")
	require.Len(t, merged, 2)

	byPhone := make(map[string]models.MergedClient)
	for _, m := range merged {
		byPhone[m.NormalizedPhone] = m
	}

	priya, ok := byPhone["9876543210"]
	require.True(t, ok)
	assert.Len(t, priya.Records, 2)
	// The most recently updated record wins as primary.
	assert.Equal(t, "b", priya.Primary.ID)
	assert.Equal(t, "Priya Sharma", priya.Primary.Name)

	rohan, ok := byPhone["9876543211"]
	require.True(t, ok)
	assert.Len(t, rohan.Records, 1)
	assert.Equal(t, "c", rohan.Primary.ID)
}

func TestMergeHistoryNewestFirst(t *testing.T) {
	clients := []models.Client{
		{
			ID: "a", Contact: "9876543210", UpdatedAt: day(1),
			ServiceHistory: []models.ServiceRecord{
				{Services: []string{"Hair Spa"}, Amount: 1200, CompletedAt: day(2)},
				{Services: []string{"Hydra Facial"}, Amount: 2500, CompletedAt: day(8)},
			},
		},
		{
			ID: "b", Contact: "+91 9876543210", UpdatedAt: day(4),
			ServiceHistory: []models.ServiceRecord{
				{Services: []string{"Manicure & Pedicure"}, Amount: 900, CompletedAt: day(5)},
			},
		},
	}

	merged := MergeByPhone(clients, "+91")
	require.Len(t, merged, 1)
	m := merged[0]

	require.Len(t, m.History, 3)
	assert.Equal(t, []string{"Hydra Facial"}, m.History[0].Services)
	assert.Equal(t, []string{"Manicure & Pedicure"}, m.History[1].Services)
	assert.Equal(t, []string{"Hair Spa"}, m.History[2].Services)

	assert.Equal(t, 3, m.VisitCount)
	assert.InDelta(t, 4600, m.TotalSpent, 0.001)
	require.NotNil(t, m.LastVisit)
	assert.Equal(t, day(8), *m.LastVisit)
}

func TestMergeAllergiesVerbatimUnion(t *testing.T) {
	clients := []models.Client{
		{ID: "a", Contact: "111", Allergies: "ammonia", UpdatedAt: day(1)},
		{ID: "b", Contact: "111", Allergies: "", UpdatedAt: day(2)},
		{ID: "c", Contact: "111", Allergies: "Ammonia, paraben", UpdatedAt: day(3)},
		{ID: "d", Contact: "111", Allergies: "ammonia", UpdatedAt: day(4)},
	}

	merged := MergeByPhone(clients, "+91")
	require.Len(t, merged, 1)
	assert.Equal(t, []string{"ammonia", "Ammonia, paraben"}, merged[0].Allergies)
}

func TestMergeToleratesBareRecords(t *testing.T) {
	clients := []models.Client{
		{ID: "a", Name: "Walk-in", Contact: "222", CreatedAt: day(1)},
	}

	merged := MergeByPhone(clients, "+91")
	require.Len(t, merged, 1)
	m := merged[0]
	assert.Empty(t, m.History)
	assert.Empty(t, m.Allergies)
	assert.Zero(t, m.VisitCount)
	assert.Zero(t, m.TotalSpent)
	assert.Nil(t, m.LastVisit)
}

func TestMergeOrderedByPrimaryRecency(t *testing.T) {
	clients := []models.Client{
		{ID: "old", Contact: "111", UpdatedAt: day(1)},
		{ID: "new", Contact: "222", UpdatedAt: day(9)},
		{ID: "mid", Contact: "333", UpdatedAt: day(5)},
	}

	merged := MergeByPhone(clients, "+91")
	require.Len(t, merged, 3)
	assert.Equal(t, "new", merged[0].Primary.ID)
	assert.Equal(t, "mid", merged[1].Primary.ID)
	assert.Equal(t, "old", merged[2].Primary.ID)
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, MergeByPhone(nil, "+91"))
}
