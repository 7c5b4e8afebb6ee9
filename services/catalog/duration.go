package catalog

import (
	"strings"

	"salonhq/services/availability"
)

// Fallback when a timeRequired string cannot be parsed at all.
var fallbackDuration = availability.Duration{MinMinutes: 30, MaxMinutes: 45}

// ParseTimeRequired turns a human-readable catalog duration ("45-60 min",
// "2 hours", "3-4 hours") into minute counts. The rule matches what the
// booking form has always done: the leading number is taken at face value,
// hours get a 30-minute spread on top, minutes a 15-minute spread, and
// anything unreadable falls back to 30-45 minutes.
func ParseTimeRequired(s string) availability.Duration {
	lower := strings.ToLower(strings.TrimSpace(s))
	n, ok := leadingInt(lower)

	switch {
	case strings.Contains(lower, "hour"):
		if !ok || n <= 0 {
			n = 1
		}
		return availability.Duration{MinMinutes: n * 60, MaxMinutes: n*60 + 30}
	case strings.Contains(lower, "min"):
		if !ok || n <= 0 {
			n = 30
		}
		return availability.Duration{MinMinutes: n, MaxMinutes: n + 15}
	default:
		return fallbackDuration
	}
}

// leadingInt parses the run of digits at the start of the string, ignoring
// everything after it ("3-4 hours" -> 3).
func leadingInt(s string) (int, bool) {
	n := 0
	seen := false
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		seen = true
	}
	return n, seen
}
