// SPDX-License-Identifier: MIT

// Package loader reads route networks from YAML or HCL files and applies
// them to the airline managers.
//
// Apply registers every airport with the directory and the route network
// before it inserts the first route, so a route may reference an airport
// declared anywhere in the file.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skyroute/airline"
)

// Sentinel errors returned by the loader.
var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .hcl.
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")

	// ErrInvalidNetwork indicates a structurally broken network definition.
	ErrInvalidNetwork = errors.New("loader: invalid network")
)

// AirportSpec declares one airport. Lat and Lon are degrees.
type AirportSpec struct {
	Code    string  `yaml:"code" hcl:"code,label"`
	Name    string  `yaml:"name" hcl:"name,optional"`
	City    string  `yaml:"city" hcl:"city,optional"`
	Country string  `yaml:"country" hcl:"country,optional"`
	Lat     float64 `yaml:"lat" hcl:"lat,optional"`
	Lon     float64 `yaml:"lon" hcl:"lon,optional"`
}

// RouteSpec declares a route. A nil Cost is replaced by the great-circle
// distance in kilometres. Bidirectional routes are inserted in both
// directions with the same cost.
type RouteSpec struct {
	From          string `yaml:"from" hcl:"from"`
	To            string `yaml:"to" hcl:"to"`
	Cost          *int64 `yaml:"cost" hcl:"cost,optional"`
	Bidirectional bool   `yaml:"bidirectional" hcl:"bidirectional,optional"`
}

// PassengerSpec declares a passenger.
type PassengerSpec struct {
	ID          string `yaml:"id" hcl:"id,label"`
	Name        string `yaml:"name" hcl:"name,optional"`
	Nationality string `yaml:"nationality" hcl:"nationality,optional"`
	Passport    string `yaml:"passport" hcl:"passport,optional"`
}

// Network is the decoded content of a network file.
type Network struct {
	Airports   []AirportSpec   `yaml:"airports" hcl:"airport,block"`
	Routes     []RouteSpec     `yaml:"routes" hcl:"route,block"`
	Passengers []PassengerSpec `yaml:"passengers" hcl:"passenger,block"`
}

// LoadFile reads path and decodes it by extension.
func LoadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseYAML decodes a YAML network. Unknown keys are rejected.
func ParseYAML(data []byte) (*Network, error) {
	var n Network
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loader: decode yaml: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// ParseHCL decodes an HCL network; filename is used in diagnostics only.
func ParseHCL(data []byte, filename string) (*Network, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: parse hcl %s: %w", filename, diags)
	}

	var n Network
	if diags = gohcl.DecodeBody(file.Body, nil, &n); diags.HasErrors() {
		return nil, fmt.Errorf("loader: decode hcl %s: %w", filename, diags)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &n, nil
}

// Validate checks codes are present and unique and that every route joins
// two distinct declared airports with a non-negative cost. Each directed
// leg may appear once, counting both directions of a bidirectional route.
func (n *Network) Validate() error {
	seen := make(map[string]struct{}, len(n.Airports))
	for i, a := range n.Airports {
		if a.Code == "" {
			return fmt.Errorf("%w: airport #%d has no code", ErrInvalidNetwork, i)
		}
		if _, dup := seen[a.Code]; dup {
			return fmt.Errorf("%w: airport %s declared twice", ErrInvalidNetwork, a.Code)
		}
		seen[a.Code] = struct{}{}
	}
	legs := make(map[[2]string]int, len(n.Routes))
	for i, r := range n.Routes {
		for _, c := range []string{r.From, r.To} {
			if _, ok := seen[c]; !ok {
				return fmt.Errorf("%w: route #%d references undeclared airport %q", ErrInvalidNetwork, i, c)
			}
		}
		if r.From == r.To {
			return fmt.Errorf("%w: route #%d is a loop at %s", ErrInvalidNetwork, i, r.From)
		}
		if r.Cost != nil && *r.Cost < 0 {
			return fmt.Errorf("%w: route %s→%s has negative cost %d", ErrInvalidNetwork, r.From, r.To, *r.Cost)
		}

		dirs := [][2]string{{r.From, r.To}}
		if r.Bidirectional {
			dirs = append(dirs, [2]string{r.To, r.From})
		}
		for _, d := range dirs {
			if prev, dup := legs[d]; dup {
				return fmt.Errorf("%w: route #%d repeats %s→%s from route #%d", ErrInvalidNetwork, i, d[0], d[1], prev)
			}
			legs[d] = i
		}
	}
	for i, p := range n.Passengers {
		if p.ID == "" {
			return fmt.Errorf("%w: passenger #%d has no id", ErrInvalidNetwork, i)
		}
	}

	return nil
}

// Targets are the managers a Network is applied to. Nil fields are skipped.
type Targets struct {
	Airports   *airline.AirportDirectory
	Passengers *airline.PassengerDirectory
	Routes     *airline.RouteNetwork
}

// Build creates fresh managers sized for n and applies n to them. log is
// handed to the managers and to Apply; opts may override the managers' logger.
func (n *Network) Build(log zerolog.Logger, opts ...airline.Option) (*Targets, error) {
	mgrOpts := append([]airline.Option{airline.WithLogger(log)}, opts...)
	netOpts := append([]airline.Option{airline.WithCapacity(len(n.Airports))}, mgrOpts...)
	t := &Targets{
		Airports:   airline.NewAirportDirectory(mgrOpts...),
		Passengers: airline.NewPassengerDirectory(mgrOpts...),
		Routes:     airline.NewRouteNetwork(netOpts...),
	}

	return t, n.Apply(t, log)
}

// Apply registers airports, then routes, then passengers. It stops at the
// first error; managers keep whatever was applied before it.
func (n *Network) Apply(t *Targets, log zerolog.Logger) error {
	airports := make(map[string]airline.Airport, len(n.Airports))
	for _, s := range n.Airports {
		a := airline.Airport{
			Code:     s.Code,
			Name:     s.Name,
			City:     s.City,
			Country:  s.Country,
			Location: orb.Point{s.Lon, s.Lat},
		}
		airports[a.Code] = a
		if t.Airports != nil {
			if err := t.Airports.Register(a); err != nil {
				return err
			}
		}
		if t.Routes != nil {
			if err := t.Routes.AddAirport(a.Code); err != nil {
				return err
			}
		}
	}

	if t.Routes != nil {
		for _, r := range n.Routes {
			cost := airline.GreatCircleKm(airports[r.From].Location, airports[r.To].Location)
			if r.Cost != nil {
				cost = *r.Cost
			}
			if err := t.Routes.AddRoute(r.From, r.To, cost); err != nil {
				return err
			}
			if r.Bidirectional {
				if err := t.Routes.AddRoute(r.To, r.From, cost); err != nil {
					return err
				}
			}
		}
	}

	if t.Passengers != nil {
		for _, p := range n.Passengers {
			if err := t.Passengers.Register(airline.Passenger{
				ID:          p.ID,
				Name:        p.Name,
				Nationality: p.Nationality,
				Passport:    p.Passport,
			}); err != nil {
				return err
			}
		}
	}
	log.Info().Int("airports", len(n.Airports)).Int("routes", len(n.Routes)).
		Int("passengers", len(n.Passengers)).Msg("network applied")

	return nil
}
