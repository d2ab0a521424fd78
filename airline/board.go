// SPDX-License-Identifier: MIT

package airline

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/list"
)

// DeparturesBoard lists scheduled flights in departure order.
type DeparturesBoard struct {
	mu      sync.RWMutex
	flights *list.Doubly[Flight]
	log     zerolog.Logger
}

// NewDeparturesBoard returns an empty board.
func NewDeparturesBoard(opts ...Option) *DeparturesBoard {
	s := applyOptions(opts)

	return &DeparturesBoard{
		flights: list.NewDoublyFunc(func(a, b Flight) bool { return a.Number == b.Number }),
		log:     s.logger.With().Str("manager", "board").Logger(),
	}
}

// Schedule inserts fl keeping the board sorted by Departure. Flights with
// equal times keep their scheduling order.
func (b *DeparturesBoard) Schedule(fl Flight) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Walk from the back: new flights usually depart last.
	pos := b.flights.Len()
	for i, cur := range b.flights.Backward() {
		if !cur.Departure.After(fl.Departure) {
			break
		}
		pos = i
	}
	_ = b.flights.InsertAt(pos, fl) // pos is within [0, Len()]
	b.log.Debug().Str("flight", fl.Number).Int("position", pos).Msg("scheduled")
}

// Cancel removes the flight with the given number.
func (b *DeparturesBoard) Cancel(number string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.flights.Remove(Flight{Number: number}); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownFlight, number)
	}
	b.log.Debug().Str("flight", number).Msg("cancelled")

	return nil
}

// Next removes and returns the earliest flight.
func (b *DeparturesBoard) Next() (Flight, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fl, err := b.flights.RemoveFirst()
	if err != nil {
		return Flight{}, ErrNoFlights
	}

	return fl, nil
}

// At returns the flight at position i.
func (b *DeparturesBoard) At(i int) (Flight, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.flights.Get(i)
}

// Len returns the number of scheduled flights.
func (b *DeparturesBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.flights.Len()
}

// Flights returns the board in departure order.
func (b *DeparturesBoard) Flights() []Flight {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.flights.Values()
}
