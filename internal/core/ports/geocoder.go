package ports

import (
	"context"
	"time"
)

// GeocodeResult is a successful address resolution. City and Country may be
// empty when the provider did not report them.
type GeocodeResult struct {
	Lat         float64
	Lng         float64
	DisplayName string
	City        string
	Country     string
}

// Geocoder resolves a free-text address to coordinates.
//
// A nil result with a nil error means the provider found nothing for the
// address; that outcome is not a failure and callers proceed with an
// unresolved location. An error is returned only for transport-level
// failures.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

// GeocodeCache stores geocoding results keyed by address for a bounded time.
// Implementations decide eviction; entries expire after the TTL given to Set.
type GeocodeCache interface {
	// Get returns the cached result for the address, or ok=false on a miss.
	Get(ctx context.Context, address string) (result *GeocodeResult, ok bool)

	// Set stores a result for the address, replacing any existing entry.
	Set(ctx context.Context, address string, result *GeocodeResult, ttl time.Duration)
}
