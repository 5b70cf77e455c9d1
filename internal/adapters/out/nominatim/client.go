// Package nominatim implements the ReverseGeocoder port against a public
// Nominatim-compatible reverse-geocoding endpoint.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/ports"
	"khasdash/internal/pkg/errs"
)

// DefaultBaseURL is the public Nominatim reverse endpoint used when no
// override is configured.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/reverse"

const defaultTimeout = 10 * time.Second

// responseDTO is the subset of the reverse-geocoding response the dashboard
// reads. All address fields are optional.
type responseDTO struct {
	Address struct {
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		CityDistrict  string `json:"city_district"`
		City          string `json:"city"`
	} `json:"address"`
}

// Client implements the ReverseGeocoder port over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a reverse-geocoding client. An empty baseURL falls back
// to DefaultBaseURL; a nil httpClient gets a default with a sane timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ReverseGeocode resolves the point into locality names with one GET carrying
// lat, lon and format=json query parameters. Failures are wrapped as
// EnrichmentError; callers log them and leave the affected order unenriched.
func (c *Client) ReverseGeocode(ctx context.Context, point kernel.GeoPoint) (ports.Address, error) {
	if err := point.Validate(); err != nil {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause("coordinates", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause("geocoder URL", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause("geocoder request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause("geocoder call", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause(
			"geocoder call", fmt.Errorf("unexpected status %s", resp.Status))
	}

	var dto responseDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return ports.Address{}, errs.NewEnrichmentErrorWithCause("geocoder response", err)
	}

	return ports.Address{
		Suburb:        dto.Address.Suburb,
		Neighbourhood: dto.Address.Neighbourhood,
		CityDistrict:  dto.Address.CityDistrict,
		City:          dto.Address.City,
	}, nil
}
