package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonhq/services/availability"
)

func TestParseTimeRequired(t *testing.T) {
	cases := []struct {
		in   string
		want availability.Duration
	}{
		{"60-90 min", availability.Duration{MinMinutes: 60, MaxMinutes: 75}},
		{"45-60 min", availability.Duration{MinMinutes: 45, MaxMinutes: 60}},
		{"30 min", availability.Duration{MinMinutes: 30, MaxMinutes: 45}},
		{"15-20 min", availability.Duration{MinMinutes: 15, MaxMinutes: 30}},
		{"2 hours", availability.Duration{MinMinutes: 120, MaxMinutes: 150}},
		{"3-4 hours", availability.Duration{MinMinutes: 180, MaxMinutes: 210}},
		{"1 hour", availability.Duration{MinMinutes: 60, MaxMinutes: 90}},
		// The number is optional for hours ("an hour or so" style entries).
		{"hours", availability.Duration{MinMinutes: 60, MaxMinutes: 90}},
		// Unreadable strings fall back to the historical 30-45 default.
		{"", availability.Duration{MinMinutes: 30, MaxMinutes: 45}},
		{"quick", availability.Duration{MinMinutes: 30, MaxMinutes: 45}},
		{"depends", availability.Duration{MinMinutes: 30, MaxMinutes: 45}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseTimeRequired(tc.in), "input %q", tc.in)
	}
}

func TestParseTimeRequiredCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		availability.Duration{MinMinutes: 120, MaxMinutes: 150},
		ParseTimeRequired("2 Hours"))
	assert.Equal(t,
		availability.Duration{MinMinutes: 45, MaxMinutes: 60},
		ParseTimeRequired("45 MIN"))
}
