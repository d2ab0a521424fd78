// SPDX-License-Identifier: MIT

// Command skyroute loads a route network and answers one itinerary query.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/airline"
	"github.com/katalvlaran/skyroute/loader"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program for testing. Exit codes: 2 bad usage or an
// invalid network file, 3 no route, 1 anything else.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, errW)
	if err != nil || shouldExit {
		return err
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: errW, NoColor: true}).
		Level(cfg.logLevel).With().Timestamp().Logger()

	network, err := loader.LoadFile(cfg.network)
	if errors.Is(err, loader.ErrInvalidNetwork) || errors.Is(err, loader.ErrUnsupportedFormat) {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if err != nil {
		return err
	}
	targets, err := network.Build(log)
	if err != nil {
		return err
	}
	log.Debug().Str("file", cfg.network).Int("airports", targets.Airports.Len()).Msg("network loaded")

	if cfg.dotPath != "" {
		if err = os.WriteFile(cfg.dotPath, []byte(targets.Routes.Dot()), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		log.Info().Str("file", cfg.dotPath).Msg("dot written")
		if cfg.from == "" {
			return nil
		}
	}

	var it airline.Itinerary
	switch cfg.mode {
	case modeLegs:
		it, err = targets.Routes.FewestLegs(cfg.from, cfg.to)
	default:
		it, err = targets.Routes.Cheapest(cfg.from, cfg.to)
	}
	switch {
	case errors.Is(err, airline.ErrNoRoute):
		return &ExitError{Code: 3, Message: err.Error()}
	case errors.Is(err, airline.ErrUnknownAirport):
		return &ExitError{Code: 2, Message: err.Error()}
	case err != nil:
		return err
	}

	fmt.Fprintf(outW, "%s\tcost=%d\tlegs=%d\n", strings.Join(it.Codes, " -> "), it.Cost, it.Legs)

	return nil
}
