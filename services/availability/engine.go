// Package availability computes bookable appointment start times for a
// calendar day. It is a pure computation over a snapshot of existing
// reservations and a service-duration catalog: no storage access, no side
// effects, safe to call concurrently. The result is advisory only; chair
// capacity is re-checked at write time when a booking is actually created.
package availability

import (
	"fmt"
	"time"
)

// Engine defaults, matching the salon's working day and two service chairs.
const (
	DefaultOpenMinutes   = 540  // 09:00
	DefaultCloseMinutes  = 1200 // 20:00
	DefaultGranularity   = 30
	DefaultMaxConcurrent = 2
)

// Fallback durations for service names missing from the catalog. The
// requested side and the reserved side deliberately disagree: the old site
// assumed 30 minutes for a service the customer is asking for and 60 minutes
// for one already sitting in a reservation, and changing either silently
// would change availability results.
const (
	DefaultRequestedMinutes = 30
	DefaultReservedMinutes  = 60
)

// Duration is the parsed time requirement of one catalog service.
type Duration struct {
	MinMinutes int
	MaxMinutes int
}

// Reservation is one already-committed booking on the target date, reduced
// to what capacity counting needs. Only pending/confirmed bookings belong
// here; the caller filters by status and by date.
type Reservation struct {
	StartMinutes int // minutes since midnight, [0,1440)
	Services     []string
}

// Request carries one availability computation's inputs. Zero values for the
// tunables select the defaults above.
type Request struct {
	Date          string              // "2006-01-02", salon-local wall clock
	Services      []string            // requested services, length >= 1
	Catalog       map[string]Duration // service name -> parsed duration
	Reservations  []Reservation       // active bookings on Date
	Now           time.Time           // wall clock for past-slot filtering
	OpenMinutes   int
	CloseMinutes  int
	Granularity   int
	MaxConcurrent int
}

const dateLayout = "2006-01-02"

// AvailableSlots returns the ascending list of bookable start times as
// "HH:MM" strings. An empty result is a valid outcome meaning fully booked
// (or a date entirely in the past); no input produces an error.
func AvailableSlots(req Request) []string {
	open := req.OpenMinutes
	if open == 0 {
		open = DefaultOpenMinutes
	}
	closing := req.CloseMinutes
	if closing == 0 {
		closing = DefaultCloseMinutes
	}
	step := req.Granularity
	if step <= 0 {
		step = DefaultGranularity
	}
	maxConcurrent := req.MaxConcurrent
	if maxConcurrent == 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	totalDuration := RequestedDuration(req.Services, req.Catalog)

	// Past-time filtering applies only when the target date is today. The
	// date strings sort lexicographically in this layout, so a plain string
	// compare decides past/today/future.
	today := req.Now.Format(dateLayout)
	nowMinutes := -1
	switch {
	case req.Date < today:
		return []string{}
	case req.Date == today:
		nowMinutes = req.Now.Hour()*60 + req.Now.Minute()
	}

	slots := []string{}
	for t := open; t < closing; t += step {
		if t <= nowMinutes {
			continue
		}
		if t+totalDuration > closing {
			continue
		}
		if CountConflicts(t, totalDuration, req.Reservations, req.Catalog) >= maxConcurrent {
			continue
		}
		slots = append(slots, FormatMinutes(t))
	}
	return slots
}

// RequestedDuration sums the minimum catalog duration of each requested
// service, falling back to 30 minutes for unknown names. Services are looked
// up independently; booking two services never discounts either.
func RequestedDuration(services []string, catalog map[string]Duration) int {
	total := 0
	for _, name := range services {
		if d, ok := catalog[name]; ok && d.MinMinutes > 0 {
			total += d.MinMinutes
		} else {
			total += DefaultRequestedMinutes
		}
	}
	return total
}

// ReservedDuration sums the minimum catalog duration of each service on an
// existing reservation, falling back to 60 minutes for unknown names.
func ReservedDuration(services []string, catalog map[string]Duration) int {
	total := 0
	for _, name := range services {
		if d, ok := catalog[name]; ok && d.MinMinutes > 0 {
			total += d.MinMinutes
		} else {
			total += DefaultReservedMinutes
		}
	}
	return total
}

// CountConflicts counts reservations whose occupied interval overlaps the
// candidate interval [start, start+duration). Intervals are half-open, so
// touching endpoints do not conflict: a reservation ending 11:00 never
// collides with a candidate starting 11:00.
func CountConflicts(start, duration int, reservations []Reservation, catalog map[string]Duration) int {
	end := start + duration
	count := 0
	for _, r := range reservations {
		rEnd := r.StartMinutes + ReservedDuration(r.Services, catalog)
		if start < rEnd && end > r.StartMinutes {
			count++
		}
	}
	return count
}

// FormatMinutes renders minutes-since-midnight as zero-padded "HH:MM".
func FormatMinutes(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// ParseMinutes converts an "HH:MM" string to minutes since midnight. It
// returns false for anything that does not parse as a 24-hour wall time.
func ParseMinutes(s string) (int, bool) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}
