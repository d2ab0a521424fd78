// SPDX-License-Identifier: MIT

package airline

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/avl"
)

// Airport is a vertex of the route network. Location is (lon, lat) in degrees.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	Location orb.Point
}

func compareAirports(a, b Airport) int { return strings.Compare(a.Code, b.Code) }

// AirportDirectory is the keyed store of airports, ordered by code.
type AirportDirectory struct {
	mu   sync.RWMutex
	tree *avl.Tree[Airport]
	log  zerolog.Logger
}

// NewAirportDirectory returns an empty directory.
func NewAirportDirectory(opts ...Option) *AirportDirectory {
	s := applyOptions(opts)

	return &AirportDirectory{
		tree: avl.New(compareAirports),
		log:  s.logger.With().Str("manager", "airports").Logger(),
	}
}

// Register adds a. Codes are unique.
func (d *AirportDirectory) Register(a Airport) error {
	if a.Code == "" {
		return ErrInvalidCode
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.tree.Insert(a); err != nil {
		if errors.Is(err, avl.ErrDuplicateKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateAirport, a.Code)
		}
		return err
	}
	d.log.Debug().Str("code", a.Code).Int("count", d.tree.Len()).Msg("airport registered")

	return nil
}

// Lookup returns the airport registered under code.
func (d *AirportDirectory) Lookup(code string) (Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, err := d.tree.Search(Airport{Code: code})
	if err != nil {
		return Airport{}, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}

	return a, nil
}

// Len returns the number of registered airports.
func (d *AirportDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Len()
}

// All returns every airport sorted by code.
func (d *AirportDirectory) All() []Airport {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Values()
}
