package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = map[string]Duration{
	"Hydra Facial":        {MinMinutes: 60, MaxMinutes: 90},
	"Hair Spa":            {MinMinutes: 45, MaxMinutes: 60},
	"Hair Styling":        {MinMinutes: 30, MaxMinutes: 45},
	"Bridal Makeup":       {MinMinutes: 180, MaxMinutes: 240},
	"Threading & Shaping": {MinMinutes: 15, MaxMinutes: 20},
}

func at(date string, hour, minute int) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.Local)
}

func TestFullDayNoReservations(t *testing.T) {
	// 60-minute request against an empty day: every half hour from 09:00
	// through 19:00. 19:30 would end at 20:30, past closing.
	got := AvailableSlots(Request{
		Date:     "2025-06-10",
		Services: []string{"Hydra Facial"},
		Catalog:  testCatalog,
		Now:      at("2025-06-10", 8, 0),
	})

	require.NotEmpty(t, got)
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "19:00", got[len(got)-1])
	assert.Len(t, got, 21)
	assert.NotContains(t, got, "19:30")
}

func TestClosingTimeCutoff(t *testing.T) {
	// 180-minute request: the last slot whose end fits is 17:00.
	got := AvailableSlots(Request{
		Date:     "2025-06-10",
		Services: []string{"Bridal Makeup"},
		Catalog:  testCatalog,
		Now:      at("2025-06-09", 12, 0),
	})
	require.NotEmpty(t, got)
	assert.Equal(t, "17:00", got[len(got)-1])
}

func TestPastSlotsExcludedToday(t *testing.T) {
	got := AvailableSlots(Request{
		Date:     "2025-06-10",
		Services: []string{"Hair Styling"},
		Catalog:  testCatalog,
		Now:      at("2025-06-10", 14, 10),
	})
	require.NotEmpty(t, got)
	// 14:00 already started, 14:30 is the first future grid point.
	assert.Equal(t, "14:30", got[0])
	for _, s := range got {
		m, ok := ParseMinutes(s)
		require.True(t, ok)
		assert.Greater(t, m, 14*60+10)
	}
}

func TestSlotOnCurrentMinuteExcluded(t *testing.T) {
	// A slot starting exactly now is already in the past.
	got := AvailableSlots(Request{
		Date:     "2025-06-10",
		Services: []string{"Hair Styling"},
		Catalog:  testCatalog,
		Now:      at("2025-06-10", 15, 0),
	})
	assert.NotContains(t, got, "15:00")
	assert.Contains(t, got, "15:30")
}

func TestPastDateYieldsNothing(t *testing.T) {
	got := AvailableSlots(Request{
		Date:     "2025-06-01",
		Services: []string{"Hair Spa"},
		Catalog:  testCatalog,
		Now:      at("2025-06-10", 9, 0),
	})
	assert.Empty(t, got)
}

func TestFutureDateSkipsPastFilter(t *testing.T) {
	// Late in the evening today, but tomorrow's morning slots are all open.
	got := AvailableSlots(Request{
		Date:     "2025-06-11",
		Services: []string{"Hair Styling"},
		Catalog:  testCatalog,
		Now:      at("2025-06-10", 23, 50),
	})
	require.NotEmpty(t, got)
	assert.Equal(t, "09:00", got[0])
}

func TestCapacityBlocksThirdChair(t *testing.T) {
	// Two reservations both occupying [10:00, 11:00): a 30-minute candidate
	// at 10:00 finds both chairs busy, one at 11:00 finds none.
	reservations := []Reservation{
		{StartMinutes: 600, Services: []string{"Hydra Facial"}},
		{StartMinutes: 600, Services: []string{"Hydra Facial"}},
	}
	got := AvailableSlots(Request{
		Date:         "2025-06-10",
		Services:     []string{"Hair Styling"},
		Catalog:      testCatalog,
		Reservations: reservations,
		Now:          at("2025-06-10", 8, 0),
	})
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
}

func TestTouchingIntervalsDoNotConflict(t *testing.T) {
	reservations := []Reservation{
		{StartMinutes: 600, Services: []string{"Hydra Facial"}}, // [10:00, 11:00)
	}
	// Candidate [09:00, 10:00) touches the reservation's start.
	assert.Equal(t, 0, CountConflicts(540, 60, reservations, testCatalog))
	// Candidate [11:00, 12:00) touches the reservation's end.
	assert.Equal(t, 0, CountConflicts(660, 60, reservations, testCatalog))
	// Candidate [10:30, 11:30) genuinely overlaps.
	assert.Equal(t, 1, CountConflicts(630, 60, reservations, testCatalog))
}

func TestSingleOverlapStillBookable(t *testing.T) {
	// One chair busy leaves the second chair free.
	reservations := []Reservation{
		{StartMinutes: 600, Services: []string{"Hydra Facial"}},
	}
	got := AvailableSlots(Request{
		Date:         "2025-06-10",
		Services:     []string{"Hair Styling"},
		Catalog:      testCatalog,
		Reservations: reservations,
		Now:          at("2025-06-10", 8, 0),
	})
	assert.Contains(t, got, "10:00")
	assert.Contains(t, got, "10:30")
}

func TestCapacityInvariant(t *testing.T) {
	reservations := []Reservation{
		{StartMinutes: 570, Services: []string{"Hair Spa"}},
		{StartMinutes: 600, Services: []string{"Hydra Facial"}},
		{StartMinutes: 615, Services: []string{"Hair Styling"}},
		{StartMinutes: 720, Services: []string{"Bridal Makeup"}},
	}
	req := Request{
		Date:         "2025-06-10",
		Services:     []string{"Hair Spa", "Hair Styling"},
		Catalog:      testCatalog,
		Reservations: reservations,
		Now:          at("2025-06-10", 7, 0),
	}
	total := RequestedDuration(req.Services, req.Catalog)
	for _, s := range AvailableSlots(req) {
		m, ok := ParseMinutes(s)
		require.True(t, ok)
		assert.Less(t, CountConflicts(m, total, reservations, testCatalog), DefaultMaxConcurrent,
			"slot %s exceeds chair capacity", s)
	}
}

func TestRemovingReservationOnlyAddsSlots(t *testing.T) {
	reservations := []Reservation{
		{StartMinutes: 570, Services: []string{"Hydra Facial"}},
		{StartMinutes: 600, Services: []string{"Hydra Facial"}},
		{StartMinutes: 780, Services: []string{"Hair Spa"}},
		{StartMinutes: 800, Services: []string{"Hair Spa"}},
	}
	base := Request{
		Date:         "2025-06-10",
		Services:     []string{"Hair Styling"},
		Catalog:      testCatalog,
		Reservations: reservations,
		Now:          at("2025-06-10", 7, 0),
	}
	before := AvailableSlots(base)

	for drop := range reservations {
		relieved := make([]Reservation, 0, len(reservations)-1)
		relieved = append(relieved, reservations[:drop]...)
		relieved = append(relieved, reservations[drop+1:]...)
		base.Reservations = relieved
		after := AvailableSlots(base)

		for _, s := range before {
			assert.Contains(t, after, s, "dropping reservation %d removed slot %s", drop, s)
		}
	}
}

func TestIdempotent(t *testing.T) {
	req := Request{
		Date:     "2025-06-10",
		Services: []string{"Hair Spa", "Threading & Shaping"},
		Catalog:  testCatalog,
		Reservations: []Reservation{
			{StartMinutes: 600, Services: []string{"Hydra Facial"}},
		},
		Now: at("2025-06-10", 10, 5),
	}
	first := AvailableSlots(req)
	second := AvailableSlots(req)
	assert.Equal(t, first, second)
}

func TestUnknownServiceDefaults(t *testing.T) {
	// Requested side falls back to 30 minutes, reserved side to 60.
	assert.Equal(t, 30, RequestedDuration([]string{"Mystery Treatment"}, testCatalog))
	assert.Equal(t, 60, ReservedDuration([]string{"Mystery Treatment"}, testCatalog))

	// Unknown services do not fail the computation.
	got := AvailableSlots(Request{
		Date:     "2025-06-10",
		Services: []string{"Mystery Treatment"},
		Catalog:  map[string]Duration{},
		Now:      at("2025-06-10", 8, 0),
	})
	require.NotEmpty(t, got)
	// 30-minute request: last slot is 19:30.
	assert.Equal(t, "19:30", got[len(got)-1])
}

func TestMultiServiceDurationSums(t *testing.T) {
	assert.Equal(t, 105, RequestedDuration([]string{"Hydra Facial", "Hair Spa"}, testCatalog))
	assert.Equal(t, 75, RequestedDuration([]string{"Hair Spa", "Hair Styling"}, testCatalog))
}

func TestFullyBookedDayIsEmptyNotError(t *testing.T) {
	// Both chairs held all day long.
	reservations := []Reservation{
		{StartMinutes: 540, Services: []string{"Bridal Makeup", "Bridal Makeup"}}, // 360 min
		{StartMinutes: 540, Services: []string{"Bridal Makeup", "Bridal Makeup"}},
		{StartMinutes: 900, Services: []string{"Bridal Makeup", "Bridal Makeup"}},
		{StartMinutes: 900, Services: []string{"Bridal Makeup", "Bridal Makeup"}},
	}
	got := AvailableSlots(Request{
		Date:         "2025-06-10",
		Services:     []string{"Hair Styling"},
		Catalog:      testCatalog,
		Reservations: reservations,
		Now:          at("2025-06-10", 7, 0),
	})
	assert.Empty(t, got)
}

func TestFormatAndParseMinutes(t *testing.T) {
	assert.Equal(t, "09:00", FormatMinutes(540))
	assert.Equal(t, "19:30", FormatMinutes(1170))

	m, ok := ParseMinutes("13:45")
	require.True(t, ok)
	assert.Equal(t, 825, m)

	_, ok = ParseMinutes("25:99")
	assert.False(t, ok)
	_, ok = ParseMinutes("")
	assert.False(t, ok)
}
