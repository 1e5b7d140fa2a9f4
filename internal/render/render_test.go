package render

import (
	"strings"
	"testing"

	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

func TestFuelTypeName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"regular_gas", "Regular"},
		{"midgrade_gas", "Midgrade"},
		{"premium_gas", "Premium"},
		{"diesel", "Diesel"},
		{"e85", "e85"},
		{"hydrogen", "hydrogen"},
	}

	for _, test := range tests {
		if got := FuelTypeName(test.code); got != test.expected {
			t.Errorf("FuelTypeName(%q) = %q, expected %q", test.code, got, test.expected)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{2.1, "$2.100"},
		{3.999, "$3.999"},
		{0, "$0.000"},
		{1.4595, "$1.460"},
	}

	for _, test := range tests {
		if got := FormatPrice(test.price); got != test.expected {
			t.Errorf("FormatPrice(%v) = %q, expected %q", test.price, got, test.expected)
		}
	}
}

func TestUnit(t *testing.T) {
	if got := Unit("USD"); got != "gal" {
		t.Errorf("Unit(USD) = %q, expected gal", got)
	}
	for _, currency := range []string{"CAD", "EUR", "GBP", ""} {
		if got := Unit(currency); got != "L" {
			t.Errorf("Unit(%q) = %q, expected L", currency, got)
		}
	}
}

func TestResultHeaderTrustsCount(t *testing.T) {
	// The envelope says 5 even though only one station came back; the
	// header repeats the envelope value without cross-checking.
	res := &gasprices.Result{
		Success:  true,
		Location: "Toronto",
		Country:  "CA",
		Count:    5,
		Source:   "GasBuddy",
		Stations: []gasprices.Station{
			{StationID: "42", Name: "Petro-Canada", Currency: "CAD"},
		},
	}

	out := Result(res)
	if !strings.Contains(out, "Gas Prices for Toronto\n") {
		t.Errorf("missing location header in:\n%s", out)
	}
	if !strings.Contains(out, "Found 5 gas stations in CA\n") {
		t.Errorf("expected the envelope count, got:\n%s", out)
	}
	if !strings.Contains(out, "Data source: GasBuddy\n") {
		t.Errorf("missing source line in:\n%s", out)
	}
}

func TestResultStationLines(t *testing.T) {
	distance := 1.2
	res := &gasprices.Result{
		Success: true,
		Count:   2,
		Stations: []gasprices.Station{
			{
				StationID: "1234",
				Name:      "Esso",
				Distance:  &distance,
				Currency:  "CAD",
				Prices: map[string]gasprices.FuelPrice{
					"regular_gas": {Price: 1.459, User: "alice"},
				},
			},
			{
				StationID: "5678",
				Currency:  "USD",
				Prices: map[string]gasprices.FuelPrice{
					"diesel": {Price: 3.999, User: "bob"},
				},
			},
		},
	}

	out := Result(res)

	if !strings.Contains(out, "1. Esso\n") {
		t.Errorf("missing named station in:\n%s", out)
	}
	if !strings.Contains(out, "   ID: 1234 • 1.2km away\n") {
		t.Errorf("missing id/distance line in:\n%s", out)
	}
	if !strings.Contains(out, "   Regular: $1.459/L by alice\n") {
		t.Errorf("missing CAD fuel line in:\n%s", out)
	}

	// Nameless station falls back to its ordinal, and its line has no
	// distance suffix.
	if !strings.Contains(out, "2. Station #2\n") {
		t.Errorf("missing ordinal fallback in:\n%s", out)
	}
	if !strings.Contains(out, "   ID: 5678\n") {
		t.Errorf("missing bare id line in:\n%s", out)
	}
	if !strings.Contains(out, "   Diesel: $3.999/gal by bob\n") {
		t.Errorf("missing USD fuel line in:\n%s", out)
	}
}

// The footer restates currency and unit from the first station only.
// With mixed currencies that is misleading, but it is the behavior the
// screen has always had, so it stays until product decides otherwise.
func TestResultFooterUsesFirstStationCurrency(t *testing.T) {
	res := &gasprices.Result{
		Success: true,
		Count:   2,
		Stations: []gasprices.Station{
			{StationID: "1", Currency: "USD"},
			{StationID: "2", Currency: "CAD"},
		},
	}

	out := Result(res)
	if !strings.Contains(out, "Prices shown in USD per gallon\n") {
		t.Errorf("footer should follow the first station's currency, got:\n%s", out)
	}
	if strings.Contains(out, "per liter") {
		t.Errorf("footer mentioned the second station's unit:\n%s", out)
	}
}

func TestResultFooterWithoutStations(t *testing.T) {
	res := &gasprices.Result{Success: true, Location: "Nowhere"}

	out := Result(res)
	if !strings.Contains(out, "Prices shown in local currency per liter\n") {
		t.Errorf("expected the fallback footer, got:\n%s", out)
	}
}
