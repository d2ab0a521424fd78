// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Query modes.
const (
	modeCheapest = "cheapest"
	modeLegs     = "legs"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// config is the parsed command line.
type config struct {
	network  string
	from     string
	to       string
	mode     string
	dotPath  string
	logLevel zerolog.Level
}

// parse processes command-line arguments. It returns the config, whether
// the program should exit cleanly (help), or an ExitError with code 2.
func parse(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("skyroute", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
skyroute - query a route network for the cheapest or shortest itinerary.

Usage:
  skyroute -network FILE -from CODE -to CODE [options]

Options:
`)
		fs.PrintDefaults()
	}

	network := fs.String("network", "", "Path to the network file (.yaml, .yml or .hcl).")
	from := fs.String("from", "", "Origin airport code.")
	to := fs.String("to", "", "Destination airport code.")
	mode := fs.String("mode", modeCheapest, "Query mode: 'cheapest' or 'legs'.")
	dotPath := fs.String("dot", "", "Write the network in Graphviz dot notation to this file.")
	logLevel := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *network == "" {
		return nil, false, &ExitError{Code: 2, Message: "missing -network"}
	}
	if *dotPath == "" && (*from == "" || *to == "") {
		return nil, false, &ExitError{Code: 2, Message: "both -from and -to are required"}
	}
	m := strings.ToLower(*mode)
	if m != modeCheapest && m != modeLegs {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -mode %q", *mode)}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -log-level %q", *logLevel)}
	}

	return &config{
		network:  *network,
		from:     strings.ToUpper(*from),
		to:       strings.ToUpper(*to),
		mode:     m,
		dotPath:  *dotPath,
		logLevel: lvl,
	}, false, nil
}
