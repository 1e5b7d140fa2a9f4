// Package render turns gas price results into terminal output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

var fuelTypeNames = map[string]string{
	"regular_gas":  "Regular",
	"midgrade_gas": "Midgrade",
	"premium_gas":  "Premium",
	"diesel":       "Diesel",
}

// FuelTypeName maps a fuel type code to its display label. Unknown
// codes pass through unchanged.
func FuelTypeName(code string) string {
	if name, ok := fuelTypeNames[code]; ok {
		return name
	}
	return code
}

// FormatPrice renders a price with a dollar sign and exactly three
// decimal places.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.3f", price)
}

// Unit returns the per-volume unit suffix for a station currency. USD
// stations price by the gallon, everything else by the liter.
func Unit(currency string) string {
	if currency == "USD" {
		return "gal"
	}
	return "L"
}

func unitWord(currency string) string {
	if currency == "USD" {
		return "gallon"
	}
	return "liter"
}

// Result renders a successful lookup. Header values come straight from
// the envelope; the station count is not recomputed from the list.
// Fuel entries print in whatever order the prices map yields them, the
// contract defines no ordering.
func Result(res *gasprices.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gas Prices for %s\n", res.Location)
	fmt.Fprintf(&b, "Found %d gas stations in %s\n", res.Count, res.Country)
	fmt.Fprintf(&b, "Data source: %s\n\n", res.Source)

	for i, station := range res.Stations {
		name := station.Name
		if name == "" {
			name = fmt.Sprintf("Station #%d", i+1)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)

		if station.Distance != nil {
			distance := strconv.FormatFloat(*station.Distance, 'f', -1, 64)
			fmt.Fprintf(&b, "   ID: %s • %skm away\n", station.StationID, distance)
		} else {
			fmt.Fprintf(&b, "   ID: %s\n", station.StationID)
		}

		for code, fuel := range station.Prices {
			fmt.Fprintf(&b, "   %s: %s/%s by %s\n",
				FuelTypeName(code), FormatPrice(fuel.Price), Unit(station.Currency), fuel.User)
		}
		b.WriteString("\n")
	}

	// The note reflects the first station's currency for the whole
	// result, even when stations mix currencies. Kept as-is until
	// product says otherwise.
	currency := "local currency"
	word := "liter"
	if len(res.Stations) > 0 {
		first := res.Stations[0]
		if first.Currency != "" {
			currency = first.Currency
		}
		word = unitWord(first.Currency)
	}
	fmt.Fprintf(&b, "Prices shown in %s per %s\n", currency, word)

	return b.String()
}
