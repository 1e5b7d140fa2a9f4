package gasprices

// Result represents the response envelope from the gas price API. The
// fields are consumed as-is; in particular Count is whatever the server
// reported, never recomputed from len(Stations).
type Result struct {
	Success  bool      `json:"success"`
	Location string    `json:"location"`
	Country  string    `json:"country"`
	Count    int       `json:"count"`
	Source   string    `json:"source"`
	Stations []Station `json:"stations"`
	Error    string    `json:"error"`
}

// Station represents a single fuel station and its price information.
type Station struct {
	StationID string               `json:"station_id"`
	Name      string               `json:"name"`
	Distance  *float64             `json:"distance"`
	Currency  string               `json:"currency"`
	Prices    map[string]FuelPrice `json:"prices"`
}

// FuelPrice is one crowd-sourced price report for a fuel grade.
type FuelPrice struct {
	Price float64 `json:"price"`
	User  string  `json:"user"`
}

// HealthStatus is the response of the /api/health endpoint.
type HealthStatus struct {
	Status            string   `json:"status"`
	Service           string   `json:"service"`
	Version           string   `json:"version"`
	SupportedFeatures []string `json:"supported_features"`
}
