package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"khasdash/internal/pkg/errs"
	"khasdash/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees (WGS 84).
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees (WGS 84).
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in degrees (WGS 84).
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees (WGS 84).
	LongitudeMax float64 = 180
)

// CoordinatesNotAvailable is the sentinel value the order source puts into the
// coordinate metadata field when no coordinates were captured for an order.
const CoordinatesNotAvailable = "N/A"

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint or
// ParseGeoPoint to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or ParseGeoPoint constructors")

// GeoPoint represents a geographic coordinate pair (WGS 84) with validated
// bounds. GeoPoint is an immutable value object; the zero value is invalid and
// fails validation - use the constructors to create instances.
//
// Example:
//
//	point, err := kernel.ParseGeoPoint("24.8607,67.0011")
//	if err != nil {
//	    // Handle malformed coordinates
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(24.860700,67.001100)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
// Returns an error if either coordinate is outside its valid bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// ParseGeoPoint creates a GeoPoint from a raw "lat,lon" string as carried in
// order metadata. The input must split into exactly two numeric components;
// anything else fails with a validation error and no GeoPoint is produced.
//
// Surrounding whitespace around each component is tolerated.
func ParseGeoPoint(raw string) (GeoPoint, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(
			"coordinates",
			fmt.Errorf("%q does not split into two components", raw),
		)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewGeoPoint(lat, lon)
}

// Validate checks if the GeoPoint was properly constructed via a constructor.
// The zero value is invalid and fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual compares two geo points for coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,lon)". Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}
	p.lon = lon
	return nil
}
