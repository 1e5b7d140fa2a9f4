package screen

import "github.com/gaspeek/gaspeek/pkg/gasprices"

// LocationLabel returns the prompt label for the selected input mode.
func LocationLabel(t gasprices.LocationType) string {
	switch t {
	case gasprices.LocationPostal:
		return "Postal Code"
	case gasprices.LocationCoordinates:
		return "Location/Address"
	default:
		return "City Name"
	}
}

// LocationPlaceholder returns the example text shown for the selected
// input mode.
func LocationPlaceholder(t gasprices.LocationType) string {
	switch t {
	case gasprices.LocationPostal:
		return "e.g., L6Y 4V3 or 90210"
	case gasprices.LocationCoordinates:
		return "e.g., 1600 Pennsylvania Ave, Washington DC"
	default:
		return "e.g., New York, NY"
	}
}

// CountryFieldVisible reports whether the optional country code field
// applies to the selected input mode. Only city lookups take a country.
func CountryFieldVisible(t gasprices.LocationType) bool {
	return t == gasprices.LocationCity
}
