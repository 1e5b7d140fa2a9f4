package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gaspeek/gaspeek/internal/config"
	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

func main() {
	app := &cli.App{
		Name:  "gaspeek",
		Usage: "Look up gas prices by city, postal code or address",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Gas price API base URL",
			},
		},
		Commands: []*cli.Command{
			queryCommand(),
			interactiveCommand(),
			healthCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// setup loads configuration, applies CLI overrides and builds the API
// client and logger shared by all commands.
func setup(c *cli.Context) (*config.Config, *gasprices.Client, *slog.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	if u := c.String("base-url"); u != "" {
		cfg.BaseURL = u
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	client := gasprices.NewClient(cfg.BaseURL, logger)
	client.SetTimeout(cfg.RequestTimeout)

	return cfg, client, logger, nil
}
