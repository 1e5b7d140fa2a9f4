package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gaspeek/gaspeek/internal/geocode"
	"github.com/gaspeek/gaspeek/internal/render"
	"github.com/gaspeek/gaspeek/internal/screen"
	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Fetch gas prices for a location",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Location type: city, postal or coordinates",
				Value:   "city",
			},
			&cli.StringFlag{
				Name:    "location",
				Aliases: []string{"l"},
				Usage:   "City name, postal code or free-text address",
			},
			&cli.StringFlag{
				Name:  "country",
				Usage: "Optional 2-letter country code (city lookups only)",
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Latitude, queries by exact coordinates with --lon",
			},
			&cli.Float64Flag{
				Name:  "lon",
				Usage: "Longitude, queries by exact coordinates with --lat",
			},
			&cli.BoolFlag{
				Name:  "resolve",
				Usage: "Geocode the location locally and query by coordinates",
			},
		},
		Action: queryAction,
	}
}

func queryAction(c *cli.Context) error {
	cfg, client, logger, err := setup(c)
	if err != nil {
		return err
	}

	query, err := buildQuery(c, cfg.NominatimServer)
	if err != nil {
		return err
	}

	result, err := client.Fetch(c.Context, query)
	if err != nil {
		var apiErr *gasprices.APIError
		switch {
		case errors.Is(err, gasprices.ErrEmptyLocation):
			return errors.New(screen.MsgEnterLocation)
		case errors.As(err, &apiErr):
			if apiErr.Message == "" {
				return errors.New(screen.MsgFetchFailed)
			}
			return err
		default:
			logger.Error("gas price request failed", "error", err)
			return errors.New(screen.MsgNetworkError)
		}
	}

	fmt.Fprint(c.App.Writer, render.Result(result))

	return nil
}

func buildQuery(c *cli.Context, nominatimServer string) (gasprices.Query, error) {
	if c.IsSet("lat") && c.IsSet("lon") {
		lat, lon := c.Float64("lat"), c.Float64("lon")
		return gasprices.Query{Lat: &lat, Lon: &lon}, nil
	}

	location := c.String("location")

	if c.Bool("resolve") {
		place, err := geocode.New(nominatimServer).Resolve(location)
		if err != nil {
			return gasprices.Query{}, fmt.Errorf("error resolving location: %w", err)
		}
		fmt.Fprintln(c.App.Writer, "Location found:", place.DisplayName)
		return gasprices.Query{Lat: &place.Lat, Lon: &place.Lon}, nil
	}

	locationType, err := parseLocationType(c.String("type"))
	if err != nil {
		return gasprices.Query{}, err
	}
	if locationType == gasprices.LocationPostal {
		location = screen.NormalizePostalCode(location)
	}

	return gasprices.Query{
		LocationType: locationType,
		Location:     location,
		Country:      c.String("country"),
	}, nil
}

func parseLocationType(s string) (gasprices.LocationType, error) {
	switch s {
	case "city":
		return gasprices.LocationCity, nil
	case "postal":
		return gasprices.LocationPostal, nil
	case "coordinates":
		return gasprices.LocationCoordinates, nil
	}

	return "", fmt.Errorf("unknown location type %q", s)
}
