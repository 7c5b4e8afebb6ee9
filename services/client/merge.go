package client

import (
	"sort"
	"strings"

	"salonhq/models"
)

// NormalizePhone canonicalizes a phone number for grouping: the country code
// prefix, whitespace and dashes are stripped, everything else is kept as
// typed. "+91 98765 43210" and "9876543210" normalize to the same key.
func NormalizePhone(phone, countryCode string) string {
	s := strings.TrimSpace(phone)
	if countryCode != "" {
		s = strings.ReplaceAll(s, countryCode, "")
	}
	var b strings.Builder
	for _, c := range s {
		switch {
		case c == '-' || c == ' ' || c == '\t':
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// recency is the ordering key for picking a group's primary record:
// updatedAt when set, otherwise createdAt.
func recency(c models.Client) int64 {
	if !c.UpdatedAt.IsZero() {
		return c.UpdatedAt.UnixMilli()
	}
	return c.CreatedAt.UnixMilli()
}

// MergeByPhone groups client records by normalized phone and derives one
// MergedClient per group. The merge is a read-time view; the underlying
// records are never modified. Groups are returned sorted by the primary's
// recency, newest first, so the admin list shows recent clients on top.
func MergeByPhone(clients []models.Client, countryCode string) []models.MergedClient {
	groups := make(map[string][]models.Client)
	order := make([]string, 0)
	for _, c := range clients {
		key := NormalizePhone(c.Contact, countryCode)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}

	merged := make([]models.MergedClient, 0, len(groups))
	for _, key := range order {
		merged = append(merged, mergeGroup(key, groups[key]))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return recency(merged[i].Primary) > recency(merged[j].Primary)
	})
	return merged
}

func mergeGroup(key string, records []models.Client) models.MergedClient {
	primary := records[0]
	for _, c := range records[1:] {
		if recency(c) > recency(primary) {
			primary = c
		}
	}

	var history []models.ServiceRecord
	var allergies []string
	seenAllergy := make(map[string]bool)
	for _, c := range records {
		history = append(history, c.ServiceHistory...)
		a := strings.TrimSpace(c.Allergies)
		if a != "" && !seenAllergy[c.Allergies] {
			seenAllergy[c.Allergies] = true
			allergies = append(allergies, c.Allergies)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CompletedAt.After(history[j].CompletedAt)
	})

	out := models.MergedClient{
		NormalizedPhone: key,
		Primary:         primary,
		Records:         records,
		History:         history,
		Allergies:       allergies,
		VisitCount:      len(history),
	}
	for _, r := range history {
		out.TotalSpent += r.Amount
	}
	if len(history) > 0 {
		last := history[0].CompletedAt
		out.LastVisit = &last
	}
	return out
}
