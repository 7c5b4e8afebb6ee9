package utils

import "time"

// CatalogCacheKey is the Redis key holding the service catalog snapshot.
const CatalogCacheKey = "catalog:services"

// CatalogCacheTTL is the time-to-live for the catalog snapshot.
const CatalogCacheTTL = 5 * time.Minute

// DateLayout is the wire format for calendar dates. Dates are opaque
// salon-local values; no timezone conversion is ever applied to them.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for slot and appointment times.
const TimeLayout = "15:04"
