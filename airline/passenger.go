// SPDX-License-Identifier: MIT

package airline

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/avl"
)

// Passenger is a traveller known to the airline.
type Passenger struct {
	ID          string
	Name        string
	Nationality string
	Passport    string
}

func comparePassengers(a, b Passenger) int { return strings.Compare(a.ID, b.ID) }

// PassengerDirectory is the keyed store of passengers, ordered by ID.
type PassengerDirectory struct {
	mu   sync.RWMutex
	tree *avl.Tree[Passenger]
	log  zerolog.Logger
}

// NewPassengerDirectory returns an empty directory.
func NewPassengerDirectory(opts ...Option) *PassengerDirectory {
	s := applyOptions(opts)

	return &PassengerDirectory{
		tree: avl.New(comparePassengers),
		log:  s.logger.With().Str("manager", "passengers").Logger(),
	}
}

// Register adds p. IDs are unique.
func (d *PassengerDirectory) Register(p Passenger) error {
	if p.ID == "" {
		return ErrInvalidCode
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.tree.Insert(p); err != nil {
		if errors.Is(err, avl.ErrDuplicateKey) {
			return fmt.Errorf("%w: %s", ErrDuplicatePassenger, p.ID)
		}
		return err
	}
	d.log.Debug().Str("id", p.ID).Msg("passenger registered")

	return nil
}

// Lookup returns the passenger with the given ID.
func (d *PassengerDirectory) Lookup(id string) (Passenger, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, err := d.tree.Search(Passenger{ID: id})
	if err != nil {
		return Passenger{}, fmt.Errorf("%w: %s", ErrUnknownPassenger, id)
	}

	return p, nil
}

// Remove deletes the passenger with the given ID.
func (d *PassengerDirectory) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.tree.Delete(Passenger{ID: id}); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownPassenger, id)
	}
	d.log.Debug().Str("id", id).Msg("passenger removed")

	return nil
}

// Len returns the number of registered passengers.
func (d *PassengerDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Len()
}

// All returns every passenger sorted by ID.
func (d *PassengerDirectory) All() []Passenger {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Values()
}
