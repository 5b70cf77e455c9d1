package ports

import (
	"context"

	"khasdash/internal/core/domain/model/kernel"
)

// Address holds the optional locality fields a reverse-geocoding lookup may
// return. Any subset of the fields can be empty.
type Address struct {
	Suburb        string
	Neighbourhood string
	CityDistrict  string
	City          string
}

// AreaLabel picks the human-readable area name from the address using the
// fixed preference order suburb, neighbourhood, city district, city. The
// precedence order is an invariant of the enrichment pipeline, not an
// implementation detail. The second return value is false when every field
// is empty.
func (a Address) AreaLabel() (string, bool) {
	for _, candidate := range []string{a.Suburb, a.Neighbourhood, a.CityDistrict, a.City} {
		if candidate != "" {
			return candidate, true
		}
	}
	return "", false
}

// ReverseGeocoder defines the contract for the third-party service that
// resolves a coordinate pair into locality names.
type ReverseGeocoder interface {
	// ReverseGeocode resolves the point into an Address. A transport failure
	// or malformed response yields an error; an address with all fields
	// empty is a valid result.
	ReverseGeocode(ctx context.Context, point kernel.GeoPoint) (Address, error)
}
