// Package geocode resolves free-text locations to coordinates through
// Nominatim, memoizing lookups for the lifetime of the process.
package geocode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/gominatim"
	"github.com/patrickmn/go-cache"
)

const (
	DefaultServer = "https://nominatim.openstreetmap.org/"

	cacheDefaultExpiry = 5 * time.Minute
	cacheCleanupTime   = 10 * time.Minute
)

// Place is a resolved location.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Resolver geocodes location text. Results are memoized in memory only;
// nothing survives the process.
type Resolver struct {
	cache  *cache.Cache
	lookup func(q string) (Place, error)
}

// New creates a Resolver against the given Nominatim server. An empty
// server falls back to the public instance.
func New(server string) *Resolver {
	if server == "" {
		server = DefaultServer
	}
	gominatim.SetServer(server)

	return &Resolver{
		cache:  cache.New(cacheDefaultExpiry, cacheCleanupTime),
		lookup: nominatimLookup,
	}
}

func nominatimLookup(q string) (Place, error) {
	qry := gominatim.SearchQuery{Q: q}

	resp, err := qry.Get()
	if err != nil {
		return Place{}, err
	}
	if len(resp) == 0 {
		return Place{}, fmt.Errorf("no results for %q", q)
	}

	lat, err := strconv.ParseFloat(resp[0].Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(resp[0].Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing longitude: %w", err)
	}

	return Place{Lat: lat, Lon: lon, DisplayName: resp[0].DisplayName}, nil
}

// Resolve geocodes the given text. Repeated lookups for the same text
// hit the session cache.
func (r *Resolver) Resolve(text string) (Place, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return Place{}, errors.New("empty location")
	}

	if cached, ok := r.cache.Get(key); ok {
		return cached.(Place), nil
	}

	place, err := r.lookup(text)
	if err != nil {
		return Place{}, err
	}
	r.cache.Set(key, place, cache.DefaultExpiration)

	return place, nil
}
