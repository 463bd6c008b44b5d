// Package nominatim implements the Geocoder port against the OpenStreetMap
// Nominatim search API. Results are cached through the GeocodeCache port so
// repeated registrations of the same address do not hit the public API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultCacheTTL bounds how long a resolved address stays cached.
	DefaultCacheTTL = time.Hour

	serviceName    = "Nominatim"
	requestTimeout = 10 * time.Second
)

// searchResult mirrors one entry of the Nominatim search response.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Client resolves free-text addresses through the Nominatim search endpoint.
// The public instance requires an identifying User-Agent on every request.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      ports.GeocodeCache
	cacheTTL   time.Duration
}

// NewClient creates a Nominatim geocoder. An empty baseURL falls back to the
// public instance and a non-positive cacheTTL falls back to the default.
// The cache may be nil, disabling caching.
func NewClient(baseURL, userAgent string, cache ports.GeocodeCache, cacheTTL time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		return nil, errs.NewValueIsRequiredError("userAgent")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      cache,
		cacheTTL:   cacheTTL,
	}, nil
}

// Geocode resolves an address to coordinates. A nil result with a nil error
// means Nominatim found nothing for the address. Only successful resolutions
// are cached; misses go back to the API on the next call.
func (c *Client) Geocode(ctx context.Context, address string) (*ports.GeocodeResult, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, address); ok {
			return cached, nil
		}
	}

	results, err := c.search(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	result, err := toResult(results[0])
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(ctx, address, result, c.cacheTTL)
	}

	return result, nil
}

func (c *Client) search(ctx context.Context, address string) ([]searchResult, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewExternalServiceError(
			serviceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}

	return results, nil
}

// toResult converts a raw search entry to a GeocodeResult. Nominatim reports
// the locality under city, town or village depending on the place type.
func toResult(raw searchResult) (*ports.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(raw.Lat, 64)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, fmt.Errorf("malformed latitude %q", raw.Lat))
	}

	lng, err := strconv.ParseFloat(raw.Lon, 64)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, fmt.Errorf("malformed longitude %q", raw.Lon))
	}

	city := raw.Address.City
	if city == "" {
		city = raw.Address.Town
	}
	if city == "" {
		city = raw.Address.Village
	}

	return &ports.GeocodeResult{
		Lat:         lat,
		Lng:         lng,
		DisplayName: raw.DisplayName,
		City:        city,
		Country:     raw.Address.Country,
	}, nil
}
