package gasprices

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// LocationType selects how the location text is interpreted by the API.
type LocationType string

const (
	LocationCity        LocationType = "city"
	LocationPostal      LocationType = "postal"
	LocationCoordinates LocationType = "coordinates"
)

// ErrEmptyLocation is returned when a query is built from a blank or
// whitespace-only location.
var ErrEmptyLocation = errors.New("empty location")

// Query describes a single price lookup.
type Query struct {
	LocationType LocationType
	Location     string
	Country      string
	// Lat and Lon query by exact coordinates when both are set,
	// bypassing server-side geocoding of Location.
	Lat *float64
	Lon *float64
}

// Values builds the query string parameters for the /api/gas-prices
// endpoint. Exactly one location parameter is emitted per location
// type; country rides along with city only when non-empty.
func (q Query) Values() (url.Values, error) {
	v := url.Values{}

	if q.Lat != nil && q.Lon != nil {
		v.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(*q.Lon, 'f', -1, 64))
		return v, nil
	}

	if strings.TrimSpace(q.Location) == "" {
		return nil, ErrEmptyLocation
	}

	switch q.LocationType {
	case LocationPostal:
		v.Set("postal_code", q.Location)
	case LocationCity:
		v.Set("city", q.Location)
		if q.Country != "" {
			v.Set("country", q.Country)
		}
	default:
		// The coordinates type carries free text, not parsed
		// lat/long. The server geocodes it.
		v.Set("location", q.Location)
	}

	return v, nil
}
