package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Check the gas price API server",
		Action: healthAction,
	}
}

func healthAction(c *cli.Context) error {
	_, client, _, err := setup(c)
	if err != nil {
		return err
	}

	status, err := client.Health(c.Context)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %s %s\n", status.Status, status.Service, status.Version)
	for _, feature := range status.SupportedFeatures {
		fmt.Fprintf(c.App.Writer, "  - %s\n", feature)
	}

	return nil
}
