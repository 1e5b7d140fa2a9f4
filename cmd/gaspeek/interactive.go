package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gaspeek/gaspeek/internal/render"
	"github.com/gaspeek/gaspeek/internal/screen"
)

func interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Interactive lookup session",
		Action:  interactiveAction,
	}
}

func interactiveAction(c *cli.Context) error {
	_, client, logger, err := setup(c)
	if err != nil {
		return err
	}

	scr := screen.New(client, logger)
	defer scr.Close()

	return runSession(c.App.Writer, os.Stdin, scr)
}

// runSession drives the lookup screen over a line-oriented prompt.
// Anything that is not a command is taken as the location text and
// submitted.
func runSession(out io.Writer, in io.Reader, scr *screen.Screen) error {
	fmt.Fprintln(out, "International Gas Prices")
	fmt.Fprintln(out, "Find gas prices anywhere in the world")
	fmt.Fprintln(out, `Commands: "type city|postal|coordinates", "country XX", "quit". Anything else searches.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", prompt(scr))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit" || line == "exit":
			return nil
		case strings.HasPrefix(line, "type "):
			arg := strings.TrimSpace(strings.TrimPrefix(line, "type "))
			locationType, err := parseLocationType(arg)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			scr.SetLocationType(locationType)
			fmt.Fprintf(out, "%s (%s)\n", screen.LocationLabel(locationType), screen.LocationPlaceholder(locationType))
			continue
		case strings.HasPrefix(line, "country "):
			if !screen.CountryFieldVisible(scr.Input().LocationType) {
				fmt.Fprintln(out, "country applies to city lookups only")
				continue
			}
			scr.SetCountryCode(strings.TrimSpace(strings.TrimPrefix(line, "country ")))
			continue
		}

		scr.SetLocationText(line)
		if err := scr.Submit(); err != nil {
			fmt.Fprintf(out, "Error: %s\n", err)
			continue
		}

		fmt.Fprintln(out, "Searching...")
		scr.Wait()

		fetch := scr.Fetch()
		switch fetch.Phase {
		case screen.PhaseSuccess:
			fmt.Fprint(out, render.Result(fetch.Result))
		case screen.PhaseError:
			fmt.Fprintf(out, "Error: %s\n", fetch.ErrMessage)
		}
	}

	return scanner.Err()
}

// prompt labels the input line after the selected location type. The
// country code shows uppercased; uppercasing is display-only.
func prompt(scr *screen.Screen) string {
	input := scr.Input()
	label := screen.LocationLabel(input.LocationType)
	if screen.CountryFieldVisible(input.LocationType) && input.CountryCode != "" {
		return fmt.Sprintf("%s [%s]", label, strings.ToUpper(input.CountryCode))
	}

	return label
}
